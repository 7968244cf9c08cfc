package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/longj724/Article-Pod-Backend/models"
	"github.com/longj724/Article-Pod-Backend/services"
)

const (
	articlesCacheKey = "articles"
	articlesCacheTTL = 10 * time.Minute
)

type ArticleCreateRequest struct {
	URL               string `json:"url" binding:"required,url"`
	TextToSpeechModel string `json:"textToSpeechModel" binding:"required"`
}

type TestVoiceRequest struct {
	Voice string `json:"voice" binding:"required"`
	Text  string `json:"text" binding:"required"`
}

type ArticleController struct {
	pipeline  *services.IngestionPipeline
	assembler *services.FeedAssembler
	articles  services.ArticleRepository
	cache     *redis.Client
}

// NewArticleController wires the ingestion pipeline, feed assembler and
// repository into the HTTP layer. cache may be nil to disable list caching.
func NewArticleController(
	pipeline *services.IngestionPipeline,
	assembler *services.FeedAssembler,
	articles services.ArticleRepository,
	cache *redis.Client,
) *ArticleController {
	return &ArticleController{
		pipeline:  pipeline,
		assembler: assembler,
		articles:  articles,
		cache:     cache,
	}
}

func (a *ArticleController) GetArticles(c *gin.Context) {
	ctx := c.Request.Context()

	if a.cache != nil {
		if cachedData, err := a.cache.Get(ctx, articlesCacheKey).Result(); err == nil {
			var responses []models.ArticleResponse
			if err := json.Unmarshal([]byte(cachedData), &responses); err == nil {
				c.JSON(http.StatusOK, responses)
				return
			}
		} else if err != redis.Nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	articles, err := a.articles.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		responses = append(responses, article.ToResponse())
	}

	if a.cache != nil {
		if data, err := json.Marshal(responses); err == nil {
			if err := a.cache.Set(ctx, articlesCacheKey, data, articlesCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache article list")
			}
		}
	}

	c.JSON(http.StatusOK, responses)
}

func (a *ArticleController) GetArticleByID(c *gin.Context) {
	article, err := a.articles.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, article.ToResponse())
}

func (a *ArticleController) CreateArticle(c *gin.Context) {
	var req ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ownerID *uuid.UUID
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uuid.UUID); ok {
			ownerID = &id
		}
	}

	article, err := a.pipeline.Ingest(c.Request.Context(), req.URL, req.TextToSpeechModel, ownerID)
	if err != nil {
		if errors.Is(err, services.ErrExtraction) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not extract article content from the provided URL"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	a.invalidateCache()

	resp := article.ToResponse()
	// Feed publication is a follow-up step: the article already exists, so
	// a publish failure is logged rather than failing the request.
	feedURL, err := a.assembler.Publish(c.Request.Context(), article)
	if err != nil {
		log.Warn().Err(err).Str("article_id", resp.ID).Msg("failed to publish article to feed")
	} else {
		resp.FeedURL = feedURL
	}

	c.JSON(http.StatusCreated, resp)
}

func (a *ArticleController) DeleteArticle(c *gin.Context) {
	article, err := a.pipeline.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	a.invalidateCache()

	c.JSON(http.StatusOK, article.ToResponse())
}

func (a *ArticleController) TestVoice(c *gin.Context) {
	var req TestVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audio, err := a.pipeline.PreviewVoice(c.Request.Context(), req.Voice, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// invalidateCache drops the cached article list without blocking the
// request.
func (a *ArticleController) invalidateCache() {
	if a.cache == nil {
		return
	}
	go func() {
		_ = a.cache.Del(context.Background(), articlesCacheKey).Err()
	}()
}
