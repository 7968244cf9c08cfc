package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/longj724/Article-Pod-Backend/models"
)

// ArticleRepository is durable CRUD over article rows.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context) ([]models.Article, error)
	Delete(ctx context.Context, article *models.Article) error
}

type GormArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

func (r *GormArticleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *GormArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var article models.Article
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &article, nil
}

func (r *GormArticleRepository) List(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&articles).Error
	return articles, err
}

func (r *GormArticleRepository) Delete(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Delete(article).Error
}
