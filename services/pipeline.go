package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/longj724/Article-Pod-Backend/models"
)

// IngestionPipeline turns a submitted URL plus a voice into a persisted,
// audio-backed article: extract, synthesize, upload, persist. Every
// external call is attempted exactly once; any failure aborts the run.
type IngestionPipeline struct {
	extractor   ArticleExtractor
	synthesizer SpeechSynthesizer
	store       ObjectStore
	articles    ArticleRepository
}

func NewIngestionPipeline(
	extractor ArticleExtractor,
	synthesizer SpeechSynthesizer,
	store ObjectStore,
	articles ArticleRepository,
) *IngestionPipeline {
	return &IngestionPipeline{
		extractor:   extractor,
		synthesizer: synthesizer,
		store:       store,
		articles:    articles,
	}
}

// Ingest runs the full pipeline for one URL. A failure before the upload
// leaves no state behind; a failure persisting the row leaves the uploaded
// audio object orphaned in storage (accepted, no compensating delete).
func (p *IngestionPipeline) Ingest(ctx context.Context, pageURL, voice string, ownerID *uuid.UUID) (*models.Article, error) {
	extracted, err := p.extractor.Extract(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	log.Info().Str("url", pageURL).Str("title", extracted.Title).Msg("article extracted")

	audio, err := p.synthesizer.Synthesize(ctx, extracted.Text, voice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	log.Info().Str("voice", voice).Int("bytes", len(audio)).Msg("speech synthesized")

	key := audioObjectKey(extracted.Title)
	audioURL, err := p.store.Upload(ctx, key, audio, "audio/mpeg")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	article := &models.Article{
		UserID:      ownerID,
		Title:       extracted.Title,
		Content:     extracted.Text,
		ContentURL:  pageURL,
		SpeechModel: voice,
		AudioURL:    audioURL,
	}
	if err := p.articles.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	log.Info().Str("id", article.ID.String()).Str("audio_url", audioURL).Msg("article ingested")

	return article, nil
}

// Remove deletes the article row. The audio object is never removed from
// storage.
func (p *IngestionPipeline) Remove(ctx context.Context, id string) (*models.Article, error) {
	article, err := p.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.articles.Delete(ctx, article); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return article, nil
}

// PreviewVoice synthesizes arbitrary text without storing or persisting
// anything, so a caller can audition a voice before ingesting.
func (p *IngestionPipeline) PreviewVoice(ctx context.Context, voice, text string) ([]byte, error) {
	audio, err := p.synthesizer.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	return audio, nil
}

var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func audioObjectKey(title string) string {
	return fmt.Sprintf("article_audio_%s-%s.mp3", uuid.New(), keySanitizer.ReplaceAllString(title, "_"))
}
