package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/longj724/Article-Pod-Backend/models"
)

type fakeExtractor struct {
	article *ExtractedArticle
	err     error
	calls   int
}

func (f *fakeExtractor) Extract(ctx context.Context, pageURL string) (*ExtractedArticle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.article, nil
}

type fakeSynthesizer struct {
	audio     []byte
	err       error
	lastText  string
	lastVoice string
	calls     int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	f.calls++
	f.lastText = text
	f.lastVoice = voice
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

type fakeStore struct {
	objects     map[string][]byte
	keys        []string
	uploadErr   error
	downloadErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objects[key] = data
	f.keys = append(f.keys, key)
	return f.URL(key), nil
}

func (f *fakeStore) Download(ctx context.Context, key string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return data, nil
}

func (f *fakeStore) URL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeRepo struct {
	created   []*models.Article
	createErr error
	deleteErr error
}

func (f *fakeRepo) Create(ctx context.Context, article *models.Article) error {
	if f.createErr != nil {
		return f.createErr
	}
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}
	f.created = append(f.created, article)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	for _, a := range f.created {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (f *fakeRepo) List(ctx context.Context) ([]models.Article, error) {
	out := make([]models.Article, 0, len(f.created))
	for _, a := range f.created {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, article *models.Article) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, a := range f.created {
		if a.ID == article.ID {
			f.created = append(f.created[:i], f.created[i+1:]...)
			break
		}
	}
	return nil
}
