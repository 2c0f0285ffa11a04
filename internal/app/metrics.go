package app

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
)

type deploymentMetrics struct {
	total    int
	failed   int
	active   int
	services int
}

// computeDeploymentMetrics counts the drawable deployments of a set of rows.
// Failed covers every status shown with the danger tone.
func computeDeploymentMetrics(rows []serviceRow) deploymentMetrics {
	var metrics deploymentMetrics
	for _, row := range rows {
		if len(row.items) > 0 {
			metrics.services++
		}
		for _, d := range row.items {
			metrics.total++
			switch {
			case d.Status == deploy.StatusSuccess:
				metrics.active++
			case d.Status.Style().Item == deploy.ToneDanger:
				metrics.failed++
			}
		}
	}
	return metrics
}

func (m *Model) deploymentMetricsSummary() string {
	metrics := computeDeploymentMetrics(m.rows)
	parts := []string{
		fmt.Sprintf("%s %s", humanize.Comma(int64(metrics.total)), plural(metrics.total, "deployment", "deployments")),
	}
	if metrics.active > 0 {
		parts = append(parts, fmt.Sprintf("%d active", metrics.active))
	}
	if metrics.failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", metrics.failed))
	}
	if m.skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", m.skipped))
	}
	if !m.snapshot.FetchedAt.IsZero() {
		parts = append(parts, "updated "+humanize.RelTime(m.snapshot.FetchedAt, m.now(), "ago", "from now"))
	}
	return strings.Join(parts, " · ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
