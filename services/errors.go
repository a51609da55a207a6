package services

import "errors"

// Voice pipeline error taxonomy. Only ErrNoAudio and ErrResource ever reach a
// caller: speech and model degradation is absorbed into lower-confidence
// successful responses instead.
var (
	// ErrNoAudio means the request carried no usable audio. Rejected before
	// any adapter is invoked.
	ErrNoAudio = errors.New("no audio file provided")

	// ErrServiceUnavailable means a speech or model backend could not be
	// reached or returned an error status.
	ErrServiceUnavailable = errors.New("external service unavailable")

	// ErrParse means a model returned output that does not conform to the
	// requested schema.
	ErrParse = errors.New("unparseable model output")

	// ErrResource means temporary storage for the uploaded audio failed.
	ErrResource = errors.New("temporary storage failure")
)
