package model

import (
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// SubmissionRecord is one 510(k) filing reduced to the dates we measure
type SubmissionRecord struct {
	SubmissionDate types.Date  `json:"submissionDate"`
	DecisionDate   *types.Date `json:"decisionDate,omitempty"`
}

// NewSubmissionRecord maps an openFDA result to a SubmissionRecord.
// An unparsable received date becomes types.MinDate.
func NewSubmissionRecord(result Result) SubmissionRecord {
	submitted, ok := types.ParseDate(result.DateReceived)
	if !ok {
		submitted = types.MinDate
	}

	record := SubmissionRecord{SubmissionDate: submitted}
	if decided, ok := types.ParseDate(result.DecisionDate); ok {
		record.DecisionDate = &decided
	}
	return record
}

// HasSubmissionDate reports whether the received date was parsed
func (s SubmissionRecord) HasSubmissionDate() bool {
	return s.SubmissionDate != types.MinDate
}

// DaysToDecision returns the days between receipt and decision
func (s SubmissionRecord) DaysToDecision() (int, bool) {
	if s.DecisionDate == nil {
		return 0, false
	}
	return s.DecisionDate.DaysSince(s.SubmissionDate), true
}
