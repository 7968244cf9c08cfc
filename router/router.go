package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/longj724/Article-Pod-Backend/controllers"
)

func InitRouter(
	articleCtrl *controllers.ArticleController,
	authCtrl *controllers.AuthController,
	optionalAuth gin.HandlerFunc,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", controllers.Health)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}

	articles := r.Group("/articles")
	articles.Use(optionalAuth)
	{
		articles.GET("/", articleCtrl.GetArticles)
		articles.GET("/:id", articleCtrl.GetArticleByID)
		articles.POST("/", articleCtrl.CreateArticle)
		articles.DELETE("/:id", articleCtrl.DeleteArticle)
		articles.POST("/test-voice", articleCtrl.TestVoice)
	}

	return r
}
