package extractions

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// LLMError carries the provider's failure message so the handler can
// surface it to the caller.
type LLMError struct {
	Message string
}

func (e *LLMError) Error() string {
	if e.Message == "" {
		return "llm call failed"
	}
	return e.Message
}
