package services

import (
	"context"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// SpeechSynthesizer renders text to encoded audio with the given voice.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

type OpenAISynthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
}

// NewOpenAISynthesizer creates a synthesizer backed by any OpenAI-compatible
// speech API. Set baseURL to a non-empty string to point at a different
// provider; leave empty for api.openai.com.
func NewOpenAISynthesizer(baseURL, apiKey, model string) *OpenAISynthesizer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = string(openai.TTSModel1)
	}
	return &OpenAISynthesizer{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.SpeechModel(model),
	}
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	return io.ReadAll(resp)
}
