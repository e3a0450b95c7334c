package model

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// ReportPercentiles are the percentile points reported for every metric
var ReportPercentiles = []int{10, 25, 50, 75, 90}

// Report is the population summary of one run
type Report struct {
	RunID       types.RunID  `json:"runId" firestore:"run_id"`
	GeneratedAt time.Time    `json:"generatedAt" firestore:"generated_at"`
	DeviceCount int          `json:"deviceCount" firestore:"device_count"`
	Rows        []ReportRow  `json:"rows" firestore:"rows"`
	Counts      ReportCounts `json:"counts" firestore:"counts"`
}

// ReportRow holds one percentile of each metric
type ReportRow struct {
	Percentile                 int     `json:"percentile" firestore:"percentile"`
	MeanDaysBetweenSubmissions float64 `json:"meanDaysBetweenSubmissions" firestore:"mean_days_between_submissions"`
	DaysSinceLastSubmission    float64 `json:"daysSinceLastSubmission" firestore:"days_since_last_submission"`
	MeanDaysToDecision         float64 `json:"meanDaysToDecision" firestore:"mean_days_to_decision"`
}

// ReportCounts is the population size behind each metric
type ReportCounts struct {
	MeanDaysBetweenSubmissions int `json:"meanDaysBetweenSubmissions" firestore:"mean_days_between_submissions"`
	DaysSinceLastSubmission    int `json:"daysSinceLastSubmission" firestore:"days_since_last_submission"`
	MeanDaysToDecision         int `json:"meanDaysToDecision" firestore:"mean_days_to_decision"`
}

// MetricSeries holds the per-device values of each metric. Devices missing
// a metric are simply absent from that series.
type MetricSeries struct {
	MeanDaysBetweenSubmissions []float64
	DaysSinceLastSubmission    []float64
	MeanDaysToDecision         []float64
}

// CollectMetrics projects each device onto the three metrics independently
func CollectMetrics(devices []*DeviceData, today types.Date) MetricSeries {
	var series MetricSeries
	for _, d := range devices {
		if v, ok := d.MeanDaysBetweenSubmissions(); ok {
			series.MeanDaysBetweenSubmissions = append(series.MeanDaysBetweenSubmissions, v)
		}
		if v, ok := d.DaysSinceLastSubmission(today); ok {
			series.DaysSinceLastSubmission = append(series.DaysSinceLastSubmission, float64(v))
		}
		if v, ok := d.MeanDaysToDecision(); ok {
			series.MeanDaysToDecision = append(series.MeanDaysToDecision, v)
		}
	}
	return series
}

// NewReport computes the percentile rows for devices as of today
func NewReport(runID types.RunID, generatedAt time.Time, devices []*DeviceData, today types.Date) *Report {
	series := CollectMetrics(devices, today)

	report := &Report{
		RunID:       runID,
		GeneratedAt: generatedAt,
		DeviceCount: len(devices),
		Rows:        make([]ReportRow, 0, len(ReportPercentiles)),
		Counts: ReportCounts{
			MeanDaysBetweenSubmissions: len(series.MeanDaysBetweenSubmissions),
			DaysSinceLastSubmission:    len(series.DaysSinceLastSubmission),
			MeanDaysToDecision:         len(series.MeanDaysToDecision),
		},
	}

	for _, p := range ReportPercentiles {
		report.Rows = append(report.Rows, ReportRow{
			Percentile:                 p,
			MeanDaysBetweenSubmissions: Percentile(series.MeanDaysBetweenSubmissions, float64(p)),
			DaysSinceLastSubmission:    Percentile(series.DaysSinceLastSubmission, float64(p)),
			MeanDaysToDecision:         Percentile(series.MeanDaysToDecision, float64(p)),
		})
	}

	return report
}

// Markdown renders the report as a markdown table
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("| Percentile | Mean Days Between Submissions | Days Since Last Submission | Mean Time to Decision |\n")
	b.WriteString("|:----------:|:-----------------------------:|:--------------------------:|:---------------------:|\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "| %d%% | %s | %s | %s |\n",
			row.Percentile,
			formatDays(row.MeanDaysBetweenSubmissions),
			formatDays(row.DaysSinceLastSubmission),
			formatDays(row.MeanDaysToDecision),
		)
	}
	fmt.Fprintf(&b, "| **n** | **%d** | **%d** | **%d** |\n",
		r.Counts.MeanDaysBetweenSubmissions,
		r.Counts.DaysSinceLastSubmission,
		r.Counts.MeanDaysToDecision,
	)
	return b.String()
}

// formatDays rounds half away from zero, unlike %.0f alone
func formatDays(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}

// SummariesMarkdown renders archived device summaries, one row per device.
// Absent metrics are shown as "-".
func SummariesMarkdown(summaries []*DeviceSummary) string {
	var b strings.Builder
	b.WriteString("| Device | Manufacturer | Submissions | Last Submission | Mean Days Between Submissions | Days Since Last Submission | Mean Time to Decision |\n")
	b.WriteString("|:-------|:-------------|------------:|:---------------:|------------------------------:|---------------------------:|----------------------:|\n")
	for _, s := range summaries {
		since := "-"
		if s.DaysSinceLastSubmission != nil {
			since = fmt.Sprintf("%d", *s.DaysSinceLastSubmission)
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s | %s |\n",
			s.DeviceName,
			s.Manufacturer,
			s.SubmissionCount,
			s.LastSubmissionDate,
			optionalDays(s.MeanDaysBetweenSubmissions),
			since,
			optionalDays(s.MeanDaysToDecision),
		)
	}
	return b.String()
}

func optionalDays(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatDays(*v)
}
