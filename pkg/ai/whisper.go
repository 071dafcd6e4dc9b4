package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/roxanekm/report-generator/pkg/config"
)

// audioTranscriber is the slice of the OpenAI client used for
// transcription. *openai.Client implements it implicitly; tests inject
// mocks.
type audioTranscriber interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

// WhisperClient transcribes audio files through the OpenAI Whisper API
type WhisperClient struct {
	client audioTranscriber
	model  string
}

// NewWhisperClient creates a Whisper client using the provided config.
// Pass a nil config to fall back to environment variables.
func NewWhisperClient(cfg *config.OpenAIConfig) *WhisperClient {
	var apiKey, baseURL, model string
	if cfg != nil {
		apiKey = cfg.APIKey
		baseURL = cfg.BaseURL
		model = cfg.Model
	}
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if model == "" {
		model = openai.Whisper1
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}

	return &WhisperClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

// Transcribe converts an audio file to text. Returns the transcript and
// the language code reported by the model ("fr", "en", ...). A non-empty
// language skips auto-detection; the API only accepts ISO 639-1 base
// codes, so regional suffixes are stripped. Temperature 0 keeps the output
// deterministic.
func (w *WhisperClient) Transcribe(ctx context.Context, audioPath, language string) (string, string, error) {
	req := openai.AudioRequest{
		Model:       w.model,
		FilePath:    audioPath,
		Format:      openai.AudioResponseFormatVerboseJSON,
		Language:    baseLanguageCode(language),
		Temperature: 0,
	}

	resp, err := w.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", "", fmt.Errorf("whisper transcription failed: %w", err)
	}

	detected := normalizeLanguage(resp.Language)
	if detected == "" {
		detected = baseLanguageCode(language)
	}
	return strings.TrimSpace(resp.Text), detected, nil
}

// whisperLanguageCodes maps the language names found in verbose_json
// responses to ISO 639-1 codes. Unknown names pass through unchanged.
var whisperLanguageCodes = map[string]string{
	"english":    "en",
	"french":     "fr",
	"german":     "de",
	"spanish":    "es",
	"italian":    "it",
	"portuguese": "pt",
	"dutch":      "nl",
	"vietnamese": "vi",
	"japanese":   "ja",
	"chinese":    "zh",
	"korean":     "ko",
	"arabic":     "ar",
	"russian":    "ru",
}

func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if code, ok := whisperLanguageCodes[lang]; ok {
		return code
	}
	return lang
}

// baseLanguageCode reduces "pt-BR" style codes to their ISO 639-1 base
func baseLanguageCode(code string) string {
	if i := strings.IndexAny(code, "-_"); i != -1 {
		code = code[:i]
	}
	return strings.ToLower(code)
}
