// Package reporter renders scan results in several output formats.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pr0nt0-Zz/StorageCleaner/internal/advisor"
	"github.com/pr0nt0-Zz/StorageCleaner/pkg/utils"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	safeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	return &Reporter{
		writer: writer,
		format: format,
	}
}

// Report generates a report from a scan result
func (r *Reporter) Report(result *advisor.ScanResult) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(result)
	case FormatJSON:
		return r.reportJSON(result)
	case FormatYAML:
		return r.reportYAML(result)
	case FormatSummary:
		return r.reportSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) reportSummary(result *advisor.ScanResult) error {
	fmt.Fprintln(r.writer, titleStyle.Render("=== Scan Summary ==="))
	fmt.Fprintf(r.writer, "%s %d scanned, %d returned\n",
		labelStyle.Render("Files:"), result.Stats.FilesScanned, result.Stats.FilesReturned)
	fmt.Fprintf(r.writer, "%s %s\n",
		labelStyle.Render("Reclaimable:"), safeStyle.Render(utils.FormatBytes(result.TotalReclaimable)))
	fmt.Fprintf(r.writer, "%s %d groups, %s reclaimable\n",
		labelStyle.Render("Duplicates:"), result.DuplicatesFound,
		utils.FormatBytes(result.DuplicateSpaceReclaimable))

	if len(result.CategorySummary) > 0 {
		fmt.Fprintf(r.writer, "\n%s\n", labelStyle.Render("Breakdown by Category:"))

		keys := make([]string, 0, len(result.CategorySummary))
		for key := range result.CategorySummary {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			cs := result.CategorySummary[key]
			fmt.Fprintf(r.writer, "  %s: %d files, %s\n",
				key, cs.Count, utils.FormatBytes(cs.TotalSize))
		}
	}

	if n := topCandidates(result, 5); len(n) > 0 {
		fmt.Fprintf(r.writer, "\n%s\n", labelStyle.Render("Top Candidates:"))
		for _, fi := range n {
			fmt.Fprintf(r.writer, "  [%3d] %s %s (%s)\n",
				fi.Score, warnStyle.Render(string(fi.Safety)), fi.Path,
				utils.FormatBytes(fi.Size))
		}
	}

	return nil
}

func (r *Reporter) reportTable(result *advisor.ScanResult) error {
	fmt.Fprintf(r.writer, "%-60s | %5s | %-9s | %-12s | %-14s | %s\n",
		"Path", "Score", "Safety", "Size", "Category", "Modified")

	for _, fi := range result.Files {
		path := fi.Path
		if len(path) > 60 {
			path = "..." + path[len(path)-57:]
		}

		fmt.Fprintf(r.writer, "%-60s | %5d | %-9s | %-12s | %-14s | %s\n",
			path,
			fi.Score,
			fi.Safety,
			utils.FormatBytes(fi.Size),
			fi.Category,
			fi.Modified)
	}

	fmt.Fprintf(r.writer, "\nTotal: %d files, %s reclaimable\n",
		len(result.Files), utils.FormatBytes(result.TotalReclaimable))

	return nil
}

func (r *Reporter) reportJSON(result *advisor.ScanResult) error {
	report := struct {
		Timestamp string              `json:"timestamp"`
		Result    *advisor.ScanResult `json:"result"`
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Result:    result,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func (r *Reporter) reportYAML(result *advisor.ScanResult) error {
	report := struct {
		Timestamp string              `yaml:"timestamp"`
		Result    *advisor.ScanResult `yaml:"result"`
	}{
		Timestamp: time.Now().Format(time.RFC3339),
		Result:    result,
	}

	encoder := yaml.NewEncoder(r.writer)
	defer encoder.Close()
	return encoder.Encode(report)
}

// SaveToFile saves the report to a file
func SaveToFile(result *advisor.ScanResult, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	reporter := New(file, format)
	return reporter.Report(result)
}

// topCandidates returns up to n highest-scored files. Files arrive
// already sorted by score descending.
func topCandidates(result *advisor.ScanResult, n int) []advisor.FileInfo {
	if len(result.Files) < n {
		n = len(result.Files)
	}
	return result.Files[:n]
}
