package observations

import "time"

// Observation is one recorded audit finding, either a preset phrase or
// free text entered by the auditor.
type Observation struct {
	ID         string    `json:"id"`
	AuditRunID string    `json:"auditRunId"`
	Text       string    `json:"text"`
	IsCustom   bool      `json:"isCustom"`
	CreatedAt  time.Time `json:"createdAt"`
}
