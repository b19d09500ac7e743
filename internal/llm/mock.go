package llm

import (
	"context"
	"encoding/json"
)

// mockPayload is the canned CIP/CDD extraction returned when mock mode is
// requested or no API credential is configured. The shape is stable so the
// dashboard can render it without a live key.
const mockPayload = `{
  "summary": "The procedures establish a risk-based CIP/CDD program covering identity verification at account opening, customer risk rating, and periodic review of existing relationships.",
  "cipRequirements": [
    "Collect name, date of birth, address, and identification number before account opening",
    "Verify identity through documentary or non-documentary methods within 30 days",
    "Retain identification records for five years after account closure",
    "Check customers against government watch lists at onboarding"
  ],
  "cddRequirements": [
    "Assign a risk rating to every customer at onboarding",
    "Identify and verify beneficial owners holding 25% or more of a legal entity",
    "Establish the nature and purpose of the customer relationship",
    "Update customer information upon trigger events"
  ],
  "eddTriggers": [
    "Politically exposed persons",
    "Customers from high-risk jurisdictions",
    "Cash-intensive businesses",
    "Unusual account activity inconsistent with the customer profile"
  ],
  "requiredDocuments": [
    "Government-issued photo identification",
    "Proof of address dated within 90 days",
    "Formation documents for legal entities",
    "Beneficial ownership certification"
  ],
  "reviewCadence": {
    "highRisk": "annual",
    "mediumRisk": "every 2 years",
    "lowRisk": "every 3 years"
  },
  "identifiedGaps": [
    "No documented timeframe for resolving watch list alerts",
    "Beneficial ownership threshold not aligned with the stated risk appetite for trusts"
  ]
}`

// MockPayload returns the canned extraction payload.
func MockPayload() json.RawMessage {
	return json.RawMessage(mockPayload)
}

// MockClient returns the canned payload without calling any provider.
// It reports zero tokens used and never fails.
type MockClient struct{}

// ExtractProcedures implements Client.
func (MockClient) ExtractProcedures(ctx context.Context, input ExtractInput) (ExtractResult, error) {
	_ = ctx
	_ = input
	return ExtractResult{Payload: MockPayload(), TokensUsed: 0}, nil
}

var _ Client = MockClient{}
