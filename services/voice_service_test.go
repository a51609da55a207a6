package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTranscriber records the staged path it was handed and can verify the
// file exists while the pipeline is mid-flight.
type stubTranscriber struct {
	t      *testing.T
	result *TranscriptionResult
	err    error
	path   string
}

func (s *stubTranscriber) Transcribe(_ context.Context, path string) (*TranscriptionResult, error) {
	s.path = path
	if _, err := os.Stat(path); err != nil {
		s.t.Errorf("staged audio missing during transcription: %v", err)
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubExtractor struct {
	result *ExtractedMeal
	err    error
	calls  int
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (*ExtractedMeal, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func audioReader() *strings.Reader {
	return strings.NewReader("RIFF....WAVEfmt fake audio bytes")
}

func TestVoiceService_ProcessAudio_Success(t *testing.T) {
	tr := &stubTranscriber{t: t, result: &TranscriptionResult{Text: "two slices of pizza", Confidence: 0.92}}
	ex := &stubExtractor{result: &ExtractedMeal{
		Meal:          "lunch",
		Items:         []ExtractedItem{{Name: "pizza", Quantity: 2, EstimatedCalories: 570}},
		TotalCalories: 570,
		Confidence:    0.85,
	}}

	res, err := NewVoiceService(tr, ex).ProcessAudio(context.Background(), audioReader(), ".wav")
	require.NoError(t, err)

	assert.Equal(t, "two slices of pizza", res.Transcription)
	assert.InDelta(t, 0.85, res.Confidence, 1e-9) // min of the two stages
	assert.Equal(t, "lunch", res.Meal)
	assert.InDelta(t, 570, res.TotalCalories, 1e-9)
	assert.Positive(t, res.Timestamp)

	assert.NoFileExists(t, tr.path, "staged audio must be removed on success")
}

func TestVoiceService_ProcessAudio_NoAudio(t *testing.T) {
	svc := NewVoiceService(&stubTranscriber{t: t}, &stubExtractor{})

	_, err := svc.ProcessAudio(context.Background(), nil, ".wav")
	assert.ErrorIs(t, err, ErrNoAudio)

	_, err = svc.ProcessAudio(context.Background(), strings.NewReader(""), ".wav")
	assert.ErrorIs(t, err, ErrNoAudio)
}

func TestVoiceService_ProcessAudio_TranscriberFailureCleansUp(t *testing.T) {
	tr := &stubTranscriber{t: t, err: fmt.Errorf("%w: whisper down", ErrServiceUnavailable)}
	ex := &stubExtractor{}

	_, err := NewVoiceService(tr, ex).ProcessAudio(context.Background(), audioReader(), ".wav")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	assert.Zero(t, ex.calls, "extraction must not run without a transcript")
	assert.NoFileExists(t, tr.path, "staged audio must be removed after transcriber failure")
}

func TestVoiceService_ProcessAudio_ExtractorFailureCleansUp(t *testing.T) {
	tr := &stubTranscriber{t: t, result: &TranscriptionResult{Text: "some food", Confidence: 0.92}}
	ex := &stubExtractor{err: fmt.Errorf("%w: model exploded", ErrParse)}

	_, err := NewVoiceService(tr, ex).ProcessAudio(context.Background(), audioReader(), ".wav")
	require.Error(t, err)

	assert.Equal(t, 1, ex.calls)
	assert.NoFileExists(t, tr.path, "staged audio must be removed after extractor failure")
}

// With the real adapter chain in development mode, a dead transcription
// backend still yields a success response, just at reduced confidence.
func TestVoiceService_DegradesInsteadOfFailing(t *testing.T) {
	whisper := &WhisperService{useFallback: true} // no key: every request is "unavailable"
	svc := NewVoiceService(whisper, NewKeywordExtractor())

	res, err := svc.ProcessAudio(context.Background(), audioReader(), ".wav")
	require.NoError(t, err)

	assert.Contains(t, fallbackTranscripts, res.Transcription)
	assert.Less(t, res.Confidence, modelConfidence)
	assert.NotEmpty(t, res.Items)
}

func TestVoiceService_DefaultsExtension(t *testing.T) {
	tr := &stubTranscriber{t: t, result: &TranscriptionResult{Text: "salad", Confidence: 0.92}}
	ex := &stubExtractor{result: &ExtractedMeal{Meal: "snack", Items: []ExtractedItem{{Name: "salad"}}, Confidence: 0.6}}

	_, err := NewVoiceService(tr, ex).ProcessAudio(context.Background(), audioReader(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(tr.path, ".wav"), "staged file should default to .wav: %s", tr.path)
}
