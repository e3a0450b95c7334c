package model

import (
	"sort"
	"unicode/utf8"

	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// UnknownDeviceName is used when a device has no aliases
const UnknownDeviceName = "Unknown"

// DeviceData is the aggregated submission history of one device
type DeviceData struct {
	DeviceName   string             `json:"deviceName"`
	Manufacturer string             `json:"manufacturer"`
	Submissions  []SubmissionRecord `json:"submissions"`
}

// NewDeviceData merges the records gathered for every alias of query.
// It returns nil when no records remain, so empty devices never reach a report.
func NewDeviceData(query DeviceQuery, records []SubmissionRecord) *DeviceData {
	submissions := MergeSubmissions(records)
	if len(submissions) == 0 {
		return nil
	}

	return &DeviceData{
		DeviceName:   CanonicalName(query.Aliases),
		Manufacturer: query.Manufacturer,
		Submissions:  submissions,
	}
}

// MergeSubmissions drops records sharing a submission date (the first one
// wins) and sorts the rest ascending. The input is not modified.
func MergeSubmissions(records []SubmissionRecord) []SubmissionRecord {
	seen := make(map[types.Date]struct{}, len(records))
	merged := make([]SubmissionRecord, 0, len(records))
	for _, record := range records {
		if _, dup := seen[record.SubmissionDate]; dup {
			continue
		}
		seen[record.SubmissionDate] = struct{}{}
		merged = append(merged, record)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].SubmissionDate.Before(merged[j].SubmissionDate)
	})
	return merged
}

// CanonicalName returns the alias with the fewest characters, the earliest
// one on a tie.
func CanonicalName(aliases []string) string {
	if len(aliases) == 0 {
		return UnknownDeviceName
	}

	best := aliases[0]
	for _, alias := range aliases[1:] {
		if utf8.RuneCountInString(alias) < utf8.RuneCountInString(best) {
			best = alias
		}
	}
	return best
}

// Key returns the device key used by report archives
func (d *DeviceData) Key() types.DeviceKey {
	return types.NewDeviceKey(d.Manufacturer, d.DeviceName)
}

// FirstSubmissionDate returns the earliest submission date
func (d *DeviceData) FirstSubmissionDate() (types.Date, bool) {
	if len(d.Submissions) == 0 {
		return types.Date{}, false
	}
	return d.Submissions[0].SubmissionDate, true
}

// LastSubmissionDate returns the latest submission date
func (d *DeviceData) LastSubmissionDate() (types.Date, bool) {
	if len(d.Submissions) == 0 {
		return types.Date{}, false
	}
	return d.Submissions[len(d.Submissions)-1].SubmissionDate, true
}

// MeanDaysToDecision averages decision minus submission over the records
// that have a decision date.
func (d *DeviceData) MeanDaysToDecision() (float64, bool) {
	var sum, n int
	for _, s := range d.Submissions {
		days, ok := s.DaysToDecision()
		if !ok {
			continue
		}
		sum += days
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// MeanDaysBetweenSubmissions is the first-to-last span divided by the
// number of gaps. Absent for fewer than two submissions.
func (d *DeviceData) MeanDaysBetweenSubmissions() (float64, bool) {
	if len(d.Submissions) < 2 {
		return 0, false
	}
	first := d.Submissions[0].SubmissionDate
	last := d.Submissions[len(d.Submissions)-1].SubmissionDate
	return float64(last.DaysSince(first)) / float64(len(d.Submissions)-1), true
}

// DaysSinceLastSubmission counts days from the latest submission to today
func (d *DeviceData) DaysSinceLastSubmission(today types.Date) (int, bool) {
	last, ok := d.LastSubmissionDate()
	if !ok {
		return 0, false
	}
	return today.DaysSince(last), true
}

// DeviceSummary is the flattened per-device result stored by report archives
type DeviceSummary struct {
	Key                        types.DeviceKey `json:"key" firestore:"key"`
	RunID                      types.RunID     `json:"runId" firestore:"run_id"`
	DeviceName                 string          `json:"deviceName" firestore:"device_name"`
	Manufacturer               string          `json:"manufacturer" firestore:"manufacturer"`
	SubmissionCount            int             `json:"submissionCount" firestore:"submission_count"`
	FirstSubmissionDate        string          `json:"firstSubmissionDate" firestore:"first_submission_date"`
	LastSubmissionDate         string          `json:"lastSubmissionDate" firestore:"last_submission_date"`
	MeanDaysBetweenSubmissions *float64        `json:"meanDaysBetweenSubmissions,omitempty" firestore:"mean_days_between_submissions"`
	DaysSinceLastSubmission    *int            `json:"daysSinceLastSubmission,omitempty" firestore:"days_since_last_submission"`
	MeanDaysToDecision         *float64        `json:"meanDaysToDecision,omitempty" firestore:"mean_days_to_decision"`
}

// Summarize flattens the device and its derived metrics
func (d *DeviceData) Summarize(runID types.RunID, today types.Date) *DeviceSummary {
	summary := &DeviceSummary{
		Key:             d.Key(),
		RunID:           runID,
		DeviceName:      d.DeviceName,
		Manufacturer:    d.Manufacturer,
		SubmissionCount: len(d.Submissions),
	}
	if first, ok := d.FirstSubmissionDate(); ok {
		summary.FirstSubmissionDate = first.String()
	}
	if last, ok := d.LastSubmissionDate(); ok {
		summary.LastSubmissionDate = last.String()
	}
	if v, ok := d.MeanDaysBetweenSubmissions(); ok {
		summary.MeanDaysBetweenSubmissions = &v
	}
	if v, ok := d.DaysSinceLastSubmission(today); ok {
		summary.DaysSinceLastSubmission = &v
	}
	if v, ok := d.MeanDaysToDecision(); ok {
		summary.MeanDaysToDecision = &v
	}
	return summary
}
