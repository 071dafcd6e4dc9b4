package notes

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/roxanekm/report-generator/internal/domain/entities"
	pkgai "github.com/roxanekm/report-generator/pkg/ai"
)

// Summarizer is the external summarization capability. Implementations
// must be safe for concurrent use and, when opts.Deterministic is set,
// return identical output for identical input.
type Summarizer interface {
	Summarize(ctx context.Context, text string, opts pkgai.SummarizeOptions) (string, error)
}

// Service orchestrates the meeting notes pipeline. It never fails outright:
// absent model output degrades to empty notes and an NA-filled report.
type Service interface {
	// BuildNotes runs summarization, topic extraction and decision/action
	// extraction over a transcript.
	BuildNotes(ctx context.Context, transcript string) *entities.MeetingNotes

	// GenerateReport builds notes and renders them as a localized
	// Markdown document.
	GenerateReport(ctx context.Context, transcript, languageCode string) (*entities.MeetingNotes, string)
}

type notesService struct {
	summarizer Summarizer
	extractor  *Extractor
	chunkSize  int
	opts       pkgai.SummarizeOptions
	logger     *zap.Logger
}

// NewService constructs the pipeline service. A nil extractor falls back
// to the default keyword table; a non-positive chunkSize falls back to
// DefaultChunkSize.
func NewService(summarizer Summarizer, extractor *Extractor, chunkSize int, opts pkgai.SummarizeOptions, logger *zap.Logger) Service {
	if extractor == nil {
		extractor = NewExtractor(DefaultKeywordRules())
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &notesService{
		summarizer: summarizer,
		extractor:  extractor,
		chunkSize:  chunkSize,
		opts:       opts,
		logger:     logger,
	}
}

// BuildNotes executes the pipeline strictly in order: summary, topics,
// decisions/actions, then assembly. No step depends on anything but the
// previous step's output and the original transcript.
func (s *notesService) BuildNotes(ctx context.Context, transcript string) *entities.MeetingNotes {
	summary := s.summarize(ctx, transcript)
	topics := Topics(summary)
	decisions, actions := s.extractor.DecisionsActions(summary)

	if s.logger != nil {
		s.logger.Info("meeting notes built",
			zap.Int("summary_chars", len(summary)),
			zap.Int("decisions", len(decisions)),
			zap.Int("actions", len(actions)),
		)
	}

	return entities.NewMeetingNotes(transcript, summary, topics, decisions, actions)
}

func (s *notesService) GenerateReport(ctx context.Context, transcript, languageCode string) (*entities.MeetingNotes, string) {
	n := s.BuildNotes(ctx, transcript)
	return n, RenderMarkdown(n, languageCode)
}

// summarize produces the unified summary. The transcript is chunked and
// each segment summarized independently, sequentially and in order, so the
// output is deterministic. A failing segment is logged and skipped: one
// bad segment must not cost the whole meeting's notes. An empty transcript
// returns "" without calling the model at all.
func (s *notesService) summarize(ctx context.Context, transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return ""
	}

	segments := SplitText(transcript, s.chunkSize)
	parts := make([]string, 0, len(segments))
	for i, segment := range segments {
		out, err := s.summarizer.Summarize(ctx, segment, s.opts)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("segment summarization failed",
					zap.Int("segment", i),
					zap.Int("segments_total", len(segments)),
					zap.Error(err),
				)
			}
			continue
		}
		parts = append(parts, out)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}
