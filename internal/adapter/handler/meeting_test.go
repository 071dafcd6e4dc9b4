package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/roxanekm/report-generator/internal/infrastructure/storage"
	"github.com/roxanekm/report-generator/internal/usecase/notes"
	pkgai "github.com/roxanekm/report-generator/pkg/ai"
	pkgvalidator "github.com/roxanekm/report-generator/pkg/validator"
)

type stubTranscriber struct {
	text     string
	language string
	err      error

	gotPath     string
	gotLanguage string
}

func (s *stubTranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, string, error) {
	s.gotPath = audioPath
	s.gotLanguage = language
	if s.err != nil {
		return "", "", s.err
	}
	return s.text, s.language, nil
}

type echoSummarizer struct{}

func (echoSummarizer) Summarize(ctx context.Context, text string, opts pkgai.SummarizeOptions) (string, error) {
	return text, nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func newTestHandler(tr Transcriber, store storage.ReportStore) *Meeting {
	svc := notes.NewService(echoSummarizer{}, nil, notes.DefaultChunkSize, pkgai.DefaultSummarizeOptions(), nil)
	return NewMeeting(tr, svc, store, nil)
}

func multipartAudioRequest(t *testing.T, filename string, content []byte, fields map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/meetings", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req, httptest.NewRecorder()
}

func TestGenerateReport_MissingFile(t *testing.T) {
	e := newTestEcho()
	h := newTestHandler(&stubTranscriber{}, nil)

	req, rec := multipartAudioRequest(t, "", nil, nil)
	c := e.NewContext(req, rec)

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	e := newTestEcho()
	h := newTestHandler(&stubTranscriber{}, nil)

	req, rec := multipartAudioRequest(t, "notes.txt", []byte("not audio"), nil)
	c := e.NewContext(req, rec)

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateReport_TranscriptionFailure(t *testing.T) {
	e := newTestEcho()
	tr := &stubTranscriber{err: errors.New("backend down")}
	h := newTestHandler(tr, nil)

	req, rec := multipartAudioRequest(t, "meeting.mp3", []byte("audio"), nil)
	c := e.NewContext(req, rec)

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGenerateReport_Markdown(t *testing.T) {
	e := newTestEcho()
	transcript := "We agreed to ship the release. The team will follow up on QA."
	tr := &stubTranscriber{text: transcript, language: "en"}
	h := newTestHandler(tr, nil)

	req, rec := multipartAudioRequest(t, "meeting.wav", []byte("audio"), nil)
	c := e.NewContext(req, rec)

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/markdown") {
		t.Fatalf("unexpected content type %q", ct)
	}
	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.Contains(disposition, "meeting-report-") || !strings.Contains(disposition, ".md") {
		t.Fatalf("unexpected content disposition %q", disposition)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "# Meeting Report") {
		t.Fatalf("missing report title in body:\n%s", body)
	}
	if !strings.Contains(body, "## Full Transcript\n"+transcript) {
		t.Fatalf("transcript not reproduced verbatim:\n%s", body)
	}
	if !strings.Contains(body, "- We agreed to ship the release.") {
		t.Fatalf("decision missing from body:\n%s", body)
	}

	// The temp upload path is passed through and cleaned up afterwards.
	if tr.gotPath == "" || filepath.Ext(tr.gotPath) != ".wav" {
		t.Fatalf("transcriber got path %q", tr.gotPath)
	}
	if _, err := os.Stat(tr.gotPath); !os.IsNotExist(err) {
		t.Fatalf("temp upload %q was not removed", tr.gotPath)
	}
}

func TestGenerateReport_FrenchOverride(t *testing.T) {
	e := newTestEcho()
	tr := &stubTranscriber{text: "Nous avons décidé de continuer.", language: "en"}
	h := newTestHandler(tr, nil)

	req, rec := multipartAudioRequest(t, "meeting.mp3", []byte("audio"), map[string]string{"language": "fr"})
	c := e.NewContext(req, rec)

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if tr.gotLanguage != "fr" {
		t.Fatalf("language override not forwarded, got %q", tr.gotLanguage)
	}
	if !strings.Contains(rec.Body.String(), "# Compte-rendu de réunion") {
		t.Fatalf("expected French report, got:\n%s", rec.Body.String())
	}
}

func TestGenerateReport_JSONFormat(t *testing.T) {
	e := newTestEcho()
	transcript := "Decided to launch next week. Marketing will follow up."
	tr := &stubTranscriber{text: transcript, language: "en"}

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir)
	if err != nil {
		t.Fatalf("local store: %v", err)
	}
	h := newTestHandler(tr, store)

	req, rec := multipartAudioRequest(t, "meeting.m4a", []byte("audio"), map[string]string{"format": "json"})
	c := e.NewContext(req, rec)

	if err := h.GenerateReport(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Message != "success" {
		t.Fatalf("unexpected message %q", envelope.Message)
	}

	var data struct {
		ReportID  string   `json:"report_id"`
		Filename  string   `json:"filename"`
		Language  string   `json:"language"`
		Location  string   `json:"location"`
		Decisions []string `json:"decisions"`
		Markdown  string   `json:"markdown"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.ReportID == "" || !strings.HasPrefix(data.Filename, "meeting-report-") {
		t.Fatalf("unexpected report identity %+v", data)
	}
	if data.Language != "en" {
		t.Fatalf("expected detected language en, got %q", data.Language)
	}
	if len(data.Decisions) != 1 || data.Decisions[0] != "Decided to launch next week." {
		t.Fatalf("unexpected decisions %v", data.Decisions)
	}
	if !strings.Contains(data.Markdown, transcript) {
		t.Fatalf("markdown missing transcript")
	}

	// Archival is best effort but succeeded here, so the file exists.
	if data.Location == "" {
		t.Fatalf("expected location to be set")
	}
	saved, err := os.ReadFile(filepath.Join(dir, data.Filename))
	if err != nil {
		t.Fatalf("read archived report: %v", err)
	}
	if string(saved) != data.Markdown {
		t.Fatalf("archived report differs from response markdown")
	}
}
