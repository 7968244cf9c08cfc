package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/longj724/Article-Pod-Backend/models"
	"github.com/longj724/Article-Pod-Backend/utils"
)

// OptionalAuth attaches the authenticated user's id to the context when a
// bearer token is present. Requests without a token pass through
// anonymously; requests with an invalid token are rejected.
func OptionalAuth(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.Next()
			return
		}

		email, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("email", email)
		c.Set("user_id", user.ID)
		c.Next()
	}
}
