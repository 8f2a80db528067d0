package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Stage identifies which request of a SendPrompt call failed.
type Stage string

const (
	StageInitial      Stage = "initial"
	StageContinuation Stage = "continuation"
)

// TransportError is returned when a request could not be sent or its
// response could not be read. No further request is attempted.
type TransportError struct {
	Stage Stage
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openai: %s request: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MissingContentError is returned when a response has no
// choices[0].message.content. Payload holds the raw response body for
// diagnostics; Err holds the decode error when the body was not valid JSON.
type MissingContentError struct {
	Stage      Stage
	StatusCode int
	Payload    []byte
	Err        error
}

func (e *MissingContentError) Error() string {
	return fmt.Sprintf("openai: error communicating with the OpenAI API: %s response has no message content (status %d)\n%s",
		e.Stage, e.StatusCode, e.Dump())
}

func (e *MissingContentError) Unwrap() error { return e.Err }

// Dump renders Payload for humans: indented when it is JSON, verbatim
// otherwise.
func (e *MissingContentError) Dump() string {
	if len(bytes.TrimSpace(e.Payload)) == 0 {
		return "<empty body>"
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, e.Payload, "", "  "); err != nil {
		return string(e.Payload)
	}

	return buf.String()
}
