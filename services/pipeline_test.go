package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline() (*IngestionPipeline, *fakeExtractor, *fakeSynthesizer, *fakeStore, *fakeRepo) {
	extractor := &fakeExtractor{
		article: &ExtractedArticle{
			Title: "Example Article",
			Text:  "Some interesting body text.",
			URL:   "https://example.com/a",
		},
	}
	synthesizer := &fakeSynthesizer{audio: []byte("mp3-bytes")}
	store := newFakeStore()
	repo := &fakeRepo{}
	return NewIngestionPipeline(extractor, synthesizer, store, repo), extractor, synthesizer, store, repo
}

func TestIngestSuccess(t *testing.T) {
	pipeline, _, synthesizer, store, repo := newTestPipeline()

	article, err := pipeline.Ingest(context.Background(), "https://example.com/a", "alloy", nil)
	require.NoError(t, err)

	assert.Equal(t, "Example Article", article.Title)
	assert.Equal(t, "Some interesting body text.", article.Content)
	assert.Equal(t, "https://example.com/a", article.ContentURL)
	assert.Equal(t, "alloy", article.SpeechModel)
	assert.NotEmpty(t, article.AudioURL)
	assert.NotEmpty(t, article.ID)
	assert.False(t, article.CreatedAt.IsZero())

	assert.Equal(t, "Some interesting body text.", synthesizer.lastText)
	assert.Equal(t, "alloy", synthesizer.lastVoice)

	require.Len(t, repo.created, 1)
	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "article_audio_"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".mp3"))
	assert.Equal(t, store.URL(store.keys[0]), article.AudioURL)
}

func TestIngestSanitizesAudioKey(t *testing.T) {
	pipeline, extractor, _, store, _ := newTestPipeline()
	extractor.article.Title = "What's new? A/B testing!"

	_, err := pipeline.Ingest(context.Background(), "https://example.com/a", "alloy", nil)
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.NotContains(t, store.keys[0], "/", "object key must not contain path separators")
	assert.NotContains(t, store.keys[0], " ")
	assert.NotContains(t, store.keys[0], "?")
}

func TestIngestExtractionFailure(t *testing.T) {
	pipeline, extractor, synthesizer, store, repo := newTestPipeline()
	extractor.err = errors.New("page unreachable")

	_, err := pipeline.Ingest(context.Background(), "https://example.com/a", "alloy", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraction)

	assert.Zero(t, synthesizer.calls)
	assert.Empty(t, store.keys)
	assert.Empty(t, repo.created)
}

func TestIngestSynthesisFailure(t *testing.T) {
	pipeline, _, synthesizer, store, repo := newTestPipeline()
	synthesizer.err = errors.New("invalid voice")

	_, err := pipeline.Ingest(context.Background(), "https://example.com/a", "bogus", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSynthesis)

	assert.Empty(t, store.keys)
	assert.Empty(t, repo.created)
}

func TestIngestStorageFailure(t *testing.T) {
	pipeline, _, _, store, repo := newTestPipeline()
	store.uploadErr = errors.New("upload rejected")

	_, err := pipeline.Ingest(context.Background(), "https://example.com/a", "alloy", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)

	assert.Empty(t, repo.created, "no row may be created after a failed upload")
}

func TestIngestPersistenceFailureLeavesAudioObject(t *testing.T) {
	pipeline, _, _, store, repo := newTestPipeline()
	repo.createErr = errors.New("db down")

	_, err := pipeline.Ingest(context.Background(), "https://example.com/a", "alloy", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)

	// The uploaded audio object is orphaned, not cleaned up.
	assert.Len(t, store.keys, 1)
	assert.Empty(t, repo.created)
}

func TestRemoveUnknownArticle(t *testing.T) {
	pipeline, _, _, _, _ := newTestPipeline()

	_, err := pipeline.Remove(context.Background(), "b4f7cf8e-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveKeepsAudioObject(t *testing.T) {
	pipeline, _, _, store, repo := newTestPipeline()

	article, err := pipeline.Ingest(context.Background(), "https://example.com/a", "alloy", nil)
	require.NoError(t, err)

	removed, err := pipeline.Remove(context.Background(), article.ID.String())
	require.NoError(t, err)
	assert.Equal(t, article.ID, removed.ID)

	_, err = repo.GetByID(context.Background(), article.ID.String())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, store.objects, 1, "audio objects are never garbage-collected")
}

func TestPreviewVoicePassthrough(t *testing.T) {
	pipeline, extractor, synthesizer, store, repo := newTestPipeline()

	audio, err := pipeline.PreviewVoice(context.Background(), "nova", "Hello there")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)

	assert.Equal(t, "Hello there", synthesizer.lastText)
	assert.Equal(t, "nova", synthesizer.lastVoice)
	assert.Zero(t, extractor.calls)
	assert.Empty(t, store.keys)
	assert.Empty(t, repo.created)
}

func TestPreviewVoiceFailure(t *testing.T) {
	pipeline, _, synthesizer, _, _ := newTestPipeline()
	synthesizer.err = errors.New("quota exceeded")

	_, err := pipeline.PreviewVoice(context.Background(), "nova", "Hello there")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSynthesis)
}
