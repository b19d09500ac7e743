package auditruns

import "time"

// AuditRun groups extractions and observations under one engagement.
type AuditRun struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClientName string    `json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
}
