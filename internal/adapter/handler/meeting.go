package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/roxanekm/report-generator/errors"
	meetingdto "github.com/roxanekm/report-generator/internal/adapter/dto/meeting"
	"github.com/roxanekm/report-generator/internal/domain/entities"
	"github.com/roxanekm/report-generator/internal/infrastructure/storage"
	"github.com/roxanekm/report-generator/internal/usecase/notes"
)

// Transcriber converts an audio file into text and reports the language the
// speech was detected in.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, language string) (text string, detectedLanguage string, err error)
}

// supportedFormats lists the audio extensions the transcription backend accepts
var supportedFormats = map[string]bool{
	".flac": true,
	".m4a":  true,
	".mp3":  true,
	".mp4":  true,
	".mpeg": true,
	".mpga": true,
	".oga":  true,
	".ogg":  true,
	".wav":  true,
	".webm": true,
}

// Meeting handles audio upload and report generation endpoints
type Meeting struct {
	transcriber Transcriber
	notesSvc    notes.Service
	store       storage.ReportStore
	logger      *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(transcriber Transcriber, notesSvc notes.Service, store storage.ReportStore, logger *zap.Logger) *Meeting {
	return &Meeting{
		transcriber: transcriber,
		notesSvc:    notesSvc,
		store:       store,
		logger:      logger,
	}
}

// GenerateReport transcribes an uploaded recording and produces a meeting report
// @Summary      Generate meeting report
// @Description  Transcribes an uploaded audio recording, synthesizes meeting notes and returns a Markdown report
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      text/markdown
// @Param        file      formData  file    true   "Audio recording"
// @Param        language  formData  string  false  "Language override (ISO 639-1 or BCP 47)"
// @Param        format    query     string  false  "Response format: markdown (default) or json"
// @Success      200  {string}  string                  "Markdown report"
// @Failure      400  {object}  map[string]interface{}  "Missing or unsupported audio file"
// @Failure      500  {object}  map[string]interface{}  "Transcription failed"
// @Router       /meetings [post]
func (h *Meeting) GenerateReport(c echo.Context) error {
	var req meetingdto.GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	// Echo only binds query tags on GET/DELETE, so pick up ?format= here.
	if f := c.QueryParam("format"); f != "" {
		req.Format = f
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMissingAudioFile())
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !supportedFormats[ext] {
		return HandleError(h.logger, c, errors.ErrUnsupportedAudio(ext))
	}

	audioPath, cleanup, err := h.saveUploadTemp(fileHeader, ext)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrUploadReadFailed(err))
	}
	defer cleanup()

	ctx := c.Request().Context()

	transcript, detectedLang, err := h.transcriber.Transcribe(ctx, audioPath, req.Language)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("transcription failed",
				zap.String("filename", fileHeader.Filename),
				zap.Error(err),
			)
		}
		return HandleError(h.logger, c, errors.ErrAITranscriptionFailed(err))
	}

	language := detectedLang
	if req.Language != "" {
		language = req.Language
	}

	meetingNotes, markdown := h.notesSvc.GenerateReport(ctx, transcript, language)

	report := entities.NewReport(language)
	if h.store != nil {
		location, saveErr := h.store.SaveReport(ctx, report.Filename, markdown)
		if saveErr != nil {
			// Archival is best effort, the report is still returned.
			if h.logger != nil {
				h.logger.Warn("report archival failed",
					zap.String("report_id", report.ID.String()),
					zap.Error(saveErr),
				)
			}
		} else {
			report.Location = location
		}
	}

	if h.logger != nil {
		h.logger.Info("report generated",
			zap.String("report_id", report.ID.String()),
			zap.String("language", language),
			zap.Int("transcript_chars", len(transcript)),
		)
	}

	if req.Format == "json" {
		return HandleSuccess(h.logger, c, meetingdto.NewNotesResponse(report, meetingNotes, markdown))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", report.Filename))
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(markdown))
}

// saveUploadTemp copies the uploaded file to a temp path, preserving the
// extension so the transcription API can infer the container format.
func (h *Meeting) saveUploadTemp(fileHeader *multipart.FileHeader, ext string) (string, func(), error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", nil, err
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}

	cleanup := func() { os.Remove(tmp.Name()) }
	return tmp.Name(), cleanup, nil
}
