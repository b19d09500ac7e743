package extractions

import "time"

// DefaultSourceFileName is used when the caller does not name the upload.
const DefaultSourceFileName = "procedures.pdf"

// ExtractionResult is one stored extraction over a procedure document.
// Results live in process memory for the server lifetime; they are never
// updated or deleted.
type ExtractionResult struct {
	ID             string         `json:"id"`
	AuditRunID     string         `json:"auditRunId"`
	SourceFileName string         `json:"sourceFileName"`
	Result         map[string]any `json:"result"`
	TokensUsed     int            `json:"tokensUsed"`
	CreatedAt      time.Time      `json:"createdAt"`
}
