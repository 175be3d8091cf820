package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/feedlens/feedlens/internal/contract"
	"github.com/feedlens/feedlens/schema"
)

// TypeShare is the per-type slice of a field's report: how often the field
// carried this type and what share of the field's occurrences that is.
type TypeShare struct {
	Type  schema.TypeTag `json:"type"`
	Count int            `json:"count"`
	Share float64        `json:"share_pct"`
}

// FieldReport aggregates one field's observations across the whole scan.
type FieldReport struct {
	Field string      `json:"field"`
	Total int         `json:"total"`
	Label string      `json:"label"`
	Types []TypeShare `json:"types"`
}

// BuildFieldReports flattens the aggregate schema into report rows, fields
// sorted alphabetically and type tags sorted alphabetically within each field.
func BuildFieldReports(aggregate schema.FieldTypeCounts) []FieldReport {
	reports := make([]FieldReport, 0, len(aggregate))
	for _, field := range aggregate.Fields() {
		counts := aggregate[field]
		total := counts.Total()
		report := FieldReport{
			Field: field,
			Total: total,
			Label: contract.GetPlainLabel(len(counts)),
		}
		for _, tag := range counts.Tags() {
			count := counts[tag]
			report.Types = append(report.Types, TypeShare{
				Type:  tag,
				Count: count,
				Share: float64(count) / float64(total) * 100.0,
			})
		}
		reports = append(reports, report)
	}
	return reports
}

// WriteScanReport outputs the aggregated schema, dispatching based on the
// output format configured.
func WriteScanReport(aggregate schema.FieldTypeCounts, cfg *contract.Config, fileCount int, duration time.Duration) error {
	reports := BuildFieldReports(aggregate)
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanCSV(w, reports, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScanTable(w, reports, cfg, fmtFloat, intFmt, fileCount, duration)
		}, "Wrote table")
	}
}

// writeScanTable generates and writes the human-readable table.
func writeScanTable(w io.Writer, reports []FieldReport, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, fileCount int, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Total", "Label", "Type", "Count", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxFieldWidth := GetMaxFieldWidth(cfg)
	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	var data [][]string
	for _, r := range reports {
		for _, ts := range r.Types {
			data = append(data, []string{
				contract.TruncateField(r.Field, maxFieldWidth),
				fmt.Sprintf(intFmt, r.Total),
				label(len(r.Types)),
				string(ts.Type),
				fmt.Sprintf(intFmt, ts.Count),
				fmtFloat(ts.Share) + "%",
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Scanned %d files, %d distinct fields\n", fileCount, len(reports)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Scan completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeScanCSV writes the report in CSV format, one row per (field, type) pair.
func writeScanCSV(w io.Writer, reports []FieldReport, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"field", "total", "label", "type", "count", "share_pct"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range reports {
			for _, ts := range r.Types {
				rec := []string{
					r.Field,
					strconv.Itoa(r.Total),
					r.Label,
					string(ts.Type),
					fmt.Sprintf(intFmt, ts.Count),
					fmtFloat(ts.Share),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
