package llm

import (
	"context"
	"encoding/json"
)

// Client abstracts LLM providers for procedure-document extraction.
type Client interface {
	ExtractProcedures(ctx context.Context, input ExtractInput) (ExtractResult, error)
}

// ExtractInput captures the inputs needed for procedure extraction.
type ExtractInput struct {
	ProceduresText string
	SourceFileName string
}

// ExtractResult is the provider output: the raw JSON payload plus the
// total token count reported by the provider's usage accounting.
type ExtractResult struct {
	Payload    json.RawMessage
	TokensUsed int
}
