package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Transcriber turns a staged audio clip into text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (*TranscriptionResult, error)
}

// TranscriptionResult is the ephemeral output of a Transcriber. Fallback marks
// synthesized transcripts so callers can surface the lower trust instead of
// hiding it.
type TranscriptionResult struct {
	Text       string
	Confidence float64
	Fallback   bool
}

const (
	// NoSpeechText is returned when the backend answers with zero results.
	NoSpeechText = "No speech detected"

	transcribeConfidence = 0.92
	fallbackConfidence   = 0.5
)

// fallbackTranscripts is the fixed pool used when the speech backend is
// unreachable and fallback mode is on (development only).
var fallbackTranscripts = []string{
	"I had a banana and a cup of coffee for breakfast",
	"Had a chicken salad with olive oil dressing",
	"Ate two slices of pizza for lunch",
	"Had an apple and some almonds as a snack",
	"I just finished eating grilled salmon with vegetables",
}

// WhisperService transcribes audio through the OpenAI Whisper endpoint.
type WhisperService struct {
	apiKey  string
	baseURL string
	client  *http.Client

	// useFallback substitutes a pool transcript for ErrServiceUnavailable
	// instead of propagating it. Never enable in production.
	useFallback bool
}

func NewWhisperService() *WhisperService {
	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &WhisperService{
		apiKey:      os.Getenv("OPENAI_API_KEY"),
		baseURL:     baseURL,
		client:      &http.Client{Timeout: 30 * time.Second},
		useFallback: os.Getenv("TRANSCRIBE_FALLBACK") == "1",
	}
}

// Transcribe sends the staged clip (16kHz mono WAV/M4A) to Whisper and returns
// the transcript. The staged file belongs to the caller; it is only read here.
func (s *WhisperService) Transcribe(ctx context.Context, path string) (*TranscriptionResult, error) {
	text, err := s.requestTranscription(ctx, path)
	if err != nil {
		if s.useFallback {
			log.Printf("transcription unavailable, using fallback transcript: %v", err)
			return &TranscriptionResult{
				Text:       fallbackTranscripts[rand.Intn(len(fallbackTranscripts))],
				Confidence: fallbackConfidence,
				Fallback:   true,
			}, nil
		}
		return nil, err
	}

	if text == "" {
		return &TranscriptionResult{Text: NoSpeechText, Confidence: transcribeConfidence}, nil
	}
	return &TranscriptionResult{Text: text, Confidence: transcribeConfidence}, nil
}

func (s *WhisperService) requestTranscription(ctx context.Context, path string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY not configured", ErrServiceUnavailable)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open staged audio: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("failed to build transcription form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("failed to read staged audio: %w", err)
	}
	if err := mw.WriteField("model", "whisper-1"); err != nil {
		return "", fmt.Errorf("failed to build transcription form: %w", err)
	}
	if err := mw.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("failed to build transcription form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build transcription form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read transcription response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: whisper API error %d: %s", ErrServiceUnavailable, resp.StatusCode, string(body))
	}

	return strings.TrimSpace(string(body)), nil
}
