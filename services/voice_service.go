package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/Nikhil8847/calify/utils"
)

// VoiceService runs the voice-to-food pipeline: stage the uploaded audio,
// transcribe it, extract a structured meal, and hand back one normalized
// result. It is stateless and safe for concurrent requests; it never persists
// anything — logging the extracted items as entries is the caller's decision.
type VoiceService struct {
	transcriber Transcriber
	extractor   Extractor
}

func NewVoiceService(t Transcriber, e Extractor) *VoiceService {
	return &VoiceService{transcriber: t, extractor: e}
}

// NewVoiceServiceFromEnv selects the extraction path from EXTRACTOR
// ("openai", the default, or "keyword").
func NewVoiceServiceFromEnv() *VoiceService {
	var ex Extractor
	if os.Getenv("EXTRACTOR") == "keyword" {
		ex = NewKeywordExtractor()
	} else {
		ex = NewOpenAIService()
	}
	return NewVoiceService(NewWhisperService(), ex)
}

// VoiceResult is the normalized pipeline output returned to the client.
type VoiceResult struct {
	Transcription string          `json:"transcription"`
	Confidence    float64         `json:"confidence"`
	Items         []ExtractedItem `json:"items"`
	Meal          string          `json:"meal"`
	TotalCalories float64         `json:"total_calories"`
	Timestamp     int64           `json:"timestamp"`
}

// ProcessAudio runs the pipeline on one uploaded clip. The staged temp file is
// removed on every exit path, whichever stage fails.
func (s *VoiceService) ProcessAudio(ctx context.Context, src io.Reader, ext string) (*VoiceResult, error) {
	if src == nil {
		return nil, ErrNoAudio
	}

	path, err := stageAudio(src, ext)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove staged audio %s: %v", path, err)
		}
	}()

	if utils.ArchiveEnabled() {
		if url, err := utils.ArchiveAudioToS3(path); err != nil {
			log.Printf("voice clip archival failed: %v", err)
		} else {
			log.Printf("archived voice clip to %s", url)
		}
	}

	tr, err := s.transcriber.Transcribe(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	if tr.Fallback {
		log.Printf("proceeding with fallback transcript: %q", tr.Text)
	}

	meal, err := s.extractor.Extract(ctx, tr.Text)
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}

	return &VoiceResult{
		Transcription: tr.Text,
		Confidence:    math.Min(tr.Confidence, meal.Confidence),
		Items:         meal.Items,
		Meal:          meal.Meal,
		TotalCalories: meal.TotalCalories,
		Timestamp:     time.Now().UnixMilli(),
	}, nil
}

// stageAudio copies the upload into a temp file the adapters can read. The
// caller owns removal of the returned path.
func stageAudio(src io.Reader, ext string) (string, error) {
	if ext == "" {
		ext = ".wav"
	}
	f, err := os.CreateTemp("", "voice-*"+ext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResource, err)
	}
	defer f.Close()

	n, err := io.Copy(f, src)
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("%w: %v", ErrResource, err)
	}
	if n == 0 {
		os.Remove(f.Name())
		return "", ErrNoAudio
	}
	return f.Name(), nil
}
