package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/roxanekm/report-generator/pkg/config"
)

// HFClient is a minimal client for the Hugging Face Inference API used for
// dialogue summarization
type HFClient struct {
	apiKey        string
	baseURL       string
	model         string
	maxRetries    int
	retryInterval time.Duration
	client        *http.Client
}

// NewHFClient creates a Hugging Face client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewHFClient(cfg *config.HuggingFaceConfig) *HFClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("HF_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("HF_API_URL")
		if base == "" {
			base = "https://api-inference.huggingface.co"
		}
	}

	model := "philschmid/bart-large-cnn-samsum"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	maxRetries := 3
	if cfg != nil && cfg.MaxRetries > 0 {
		maxRetries = cfg.MaxRetries
	}

	return &HFClient{
		apiKey:        apiKey,
		baseURL:       base,
		model:         model,
		maxRetries:    maxRetries,
		retryInterval: 500 * time.Millisecond,
		client:        &http.Client{Timeout: 30 * time.Second},
	}
}

// summaryRequest is the shape for summarization requests
type summaryRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters summaryParameters `json:"parameters"`
	Options    summaryOptions    `json:"options"`
}

type summaryParameters struct {
	MaxLength int  `json:"max_length,omitempty"`
	MinLength int  `json:"min_length,omitempty"`
	DoSample  bool `json:"do_sample"`
}

type summaryOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// summaryResponse is a minimal response shape
type summaryResponse []struct {
	SummaryText string `json:"summary_text"`
}

// Summarize sends text to the summarization model and returns the summary.
// Transient failures (5xx, 429, network errors) are retried with
// exponential backoff; client errors and malformed responses fail
// immediately.
func (h *HFClient) Summarize(ctx context.Context, text string, opts SummarizeOptions) (string, error) {
	body := summaryRequest{
		Inputs: text,
		Parameters: summaryParameters{
			MaxLength: opts.MaxLength,
			MinLength: opts.MinLength,
			DoSample:  !opts.Deterministic,
		},
		Options: summaryOptions{WaitForModel: true},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	endpoint := h.baseURL + "/models/" + h.model

	var summary string
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
		if err != nil {
			return backoff.Permanent(err)
		}
		if h.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+h.apiKey)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := h.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("hugging face returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("hugging face returned status %d", resp.StatusCode))
		}

		var sr summaryResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode summary response: %w", err))
		}
		if len(sr) == 0 {
			return backoff.Permanent(fmt.Errorf("empty response from summarization model"))
		}
		summary = sr[0].SummaryText
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = h.retryInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(h.maxRetries)), ctx)

	if err := backoff.Retry(operation, policy); err != nil {
		return "", err
	}
	return summary, nil
}
