package services

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVEfmt "), 0o600))
	return path
}

func newTestWhisper(t *testing.T) *WhisperService {
	t.Helper()
	svc := &WhisperService{
		apiKey:  "test-key",
		baseURL: "https://api.openai.com/v1",
		client:  &http.Client{},
	}
	httpmock.ActivateNonDefault(svc.client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return svc
}

func TestWhisperService_Transcribe_Success(t *testing.T) {
	svc := newTestWhisper(t)
	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/audio/transcriptions",
		httpmock.NewStringResponder(http.StatusOK, "I had a banana and a cup of coffee for breakfast\n"))

	res, err := svc.Transcribe(context.Background(), writeTestAudio(t))
	require.NoError(t, err)
	assert.Equal(t, "I had a banana and a cup of coffee for breakfast", res.Text)
	assert.InDelta(t, transcribeConfidence, res.Confidence, 1e-9)
	assert.False(t, res.Fallback)
}

func TestWhisperService_Transcribe_EmptyResult(t *testing.T) {
	svc := newTestWhisper(t)
	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/audio/transcriptions",
		httpmock.NewStringResponder(http.StatusOK, "  \n"))

	res, err := svc.Transcribe(context.Background(), writeTestAudio(t))
	require.NoError(t, err)
	assert.Equal(t, NoSpeechText, res.Text)
}

func TestWhisperService_Transcribe_BackendError(t *testing.T) {
	svc := newTestWhisper(t)
	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/audio/transcriptions",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"error": "boom"}`))

	_, err := svc.Transcribe(context.Background(), writeTestAudio(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestWhisperService_Transcribe_FallbackMode(t *testing.T) {
	svc := newTestWhisper(t)
	svc.useFallback = true
	httpmock.RegisterResponder("POST", "https://api.openai.com/v1/audio/transcriptions",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "unavailable"))

	res, err := svc.Transcribe(context.Background(), writeTestAudio(t))
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Less(t, res.Confidence, transcribeConfidence)
	assert.Contains(t, fallbackTranscripts, res.Text)
}

func TestWhisperService_Transcribe_NoAPIKey(t *testing.T) {
	svc := &WhisperService{baseURL: "https://api.openai.com/v1", client: &http.Client{}}

	_, err := svc.Transcribe(context.Background(), writeTestAudio(t))
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestFallbackTranscriptPool(t *testing.T) {
	require.NotEmpty(t, fallbackTranscripts)
	for _, s := range fallbackTranscripts {
		assert.NotEmpty(t, strings.TrimSpace(s))
		// Each pool entry reads as a meal description usable by extraction.
		assert.Greater(t, len(strings.Fields(s)), 3, s)
	}
}
