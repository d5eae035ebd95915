// Package export renders shortlist reports as Excel workbooks for placement
// cell staff.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

const (
	summarySheet    = "Summary"
	candidatesSheet = "Candidates"
)

// WriteShortlist renders the report into an in-memory workbook with a summary
// sheet and a per-candidate sheet in ranked order.
func WriteShortlist(report *types.ShortlistReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if _, err := f.NewSheet(candidatesSheet); err != nil {
		return nil, fmt.Errorf("failed to create candidates sheet: %w", err)
	}

	if err := writeSummary(f, report); err != nil {
		return nil, err
	}
	if err := writeCandidates(f, report); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return &buf, nil
}

// SaveShortlist writes the report workbook to disk, appending the .xlsx
// extension when missing.
func SaveShortlist(report *types.ShortlistReport, outputPath string) error {
	buf, err := WriteShortlist(report)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath += ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to reopen workbook: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, report *types.ShortlistReport) error {
	if err := f.SetColWidth(summarySheet, "A", "A", 25); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 40); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	topN := "unset"
	if report.TopN != nil {
		topN = fmt.Sprintf("%d", *report.TopN)
	}

	rows := [][]any{
		{"Company", report.Company},
		{"Drive ID", report.DriveID},
		{"Threshold", report.Threshold},
		{"Top N", topN},
		{"Offer filter", report.OfferFilter},
		{"Total candidates", report.Total},
		{"Shortlisted", report.Shortlisted},
		{"Rejected", report.Rejected},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

func writeCandidates(f *excelize.File, report *types.ShortlistReport) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	header := []any{"Rank", "Name", "Branch", "CGPA", "Skill Score", "CGPA Score", "Final Score", "Status", "Reason"}
	if err := f.SetSheetRow(candidatesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := f.SetCellStyle(candidatesSheet, "A1", "I1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(candidatesSheet, "B", "B", 25); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(candidatesSheet, "I", "I", 45); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	for i, res := range report.Results {
		row := []any{
			i + 1, res.Name, res.Branch, res.CGPA,
			res.SkillScore, res.CGPAScore, res.FinalScore,
			string(res.Status), res.Reason,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetSheetRow(candidatesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write candidate row: %w", err)
		}
	}
	return nil
}
