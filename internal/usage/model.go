package usage

// Usage is the cumulative LLM spend recorded for one audit run.
type Usage struct {
	AuditRunID  string `json:"auditRunId"`
	Extractions int    `json:"extractions"`
	TokensUsed  int    `json:"tokensUsed"`
}
