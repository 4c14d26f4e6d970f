// Package projection turns store aggregations into the monospace reports
// the analytics dialog sends back. It reads, formats, and never mutates.
package projection

import (
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"topic-lab/repositories"
)

type Reporter struct {
	analytics repositories.IAnalyticsRepository
	searches  repositories.ISearchLogRepository
	topQuery  int
}

func NewReporter(analytics repositories.IAnalyticsRepository, searches repositories.ISearchLogRepository, topQuery int) *Reporter {
	return &Reporter{analytics: analytics, searches: searches, topQuery: topQuery}
}

func (r *Reporter) GroupDistribution(ctx context.Context) (string, error) {
	buckets, err := r.analytics.StudentsPerGroup(ctx)
	if err != nil {
		return "", err
	}
	return renderBuckets("Group", buckets), nil
}

func (r *Reporter) DepartmentDistribution(ctx context.Context) (string, error) {
	buckets, err := r.analytics.StudentsPerDepartment(ctx)
	if err != nil {
		return "", err
	}
	return renderBuckets("Department", buckets), nil
}

func (r *Reporter) StudentsWithTopic(ctx context.Context) (string, error) {
	entries, err := r.analytics.StudentsWithTopic(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "No student holds a topic yet.", nil
	}

	var sb strings.Builder
	table := newTable(&sb, []string{"Student", "Group", "Topic"})
	for _, e := range entries {
		table.Append([]string{e.Student, e.Group, e.Topic})
	}
	table.Render()
	return sb.String(), nil
}

func (r *Reporter) StudentsWithoutTopic(ctx context.Context) (string, error) {
	names, err := r.analytics.StudentsWithoutTopic(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "Every student holds a topic.", nil
	}
	return "Students without a topic:\n• " + strings.Join(names, "\n• "), nil
}

func (r *Reporter) PopularQueries(ctx context.Context) (string, error) {
	counts, err := r.searches.Popular(ctx, r.topQuery)
	if err != nil {
		return "", err
	}
	if len(counts) == 0 {
		return "No searches logged yet.", nil
	}

	var sb strings.Builder
	table := newTable(&sb, []string{"Query", "Times"})
	for _, qc := range counts {
		table.Append([]string{qc.Query, fmt.Sprintf("%d", qc.Count)})
	}
	table.Render()
	return sb.String(), nil
}

func renderBuckets(label string, buckets []repositories.Bucket) string {
	if len(buckets) == 0 {
		return "No students registered yet."
	}
	var sb strings.Builder
	table := newTable(&sb, []string{label, "Students"})
	for _, b := range buckets {
		table.Append([]string{b.Label, fmt.Sprintf("%d", b.Count)})
	}
	table.Render()
	return sb.String()
}

// newTable applies the compact, border-free style chat output needs.
func newTable(sb *strings.Builder, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(sb)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
