// Package export writes reports to spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/outliner-coach/letmeknowme/internal/model"
	"github.com/outliner-coach/letmeknowme/internal/presenter"
)

// Sheet names
const (
	SheetSummary   = "Summary"
	SheetScores    = "Scores"
	SheetKeywords  = "Keywords"
	SheetResponses = "Responses"
)

// WriteReportXLSX writes a workbook with the analysis and raw responses of report
func WriteReportXLSX(w io.Writer, report *model.Report, analysis model.ReportAnalysis, content model.Content) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetScores, SheetKeywords, SheetResponses} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("new sheet %s: %w", name, err)
		}
	}

	summary := [][]any{
		{"Requester", report.RequesterName},
		{"Report ID", report.ID},
		{"Total responses", analysis.TotalResponses},
		{"Main archetype", presenter.ArchetypeName(analysis.MainArchetype, content)},
		{"Main percentage", analysis.MainPercentage},
		{"Sub archetype", presenter.ArchetypeName(analysis.SubArchetype, content)},
		{"Sub percentage", analysis.SubPercentage},
		{"Comment", presenter.Comment(analysis.MainArchetype, analysis.SubArchetype, content)},
	}
	if err := writeRows(f, SheetSummary, summary); err != nil {
		return err
	}

	scores := [][]any{{"Archetype", "Name", "Score"}}
	for _, a := range model.Archetypes {
		scores = append(scores, []any{string(a), presenter.ArchetypeName(a, content), analysis.Scores[a]})
	}
	if err := writeRows(f, SheetScores, scores); err != nil {
		return err
	}

	if err := writeRows(f, SheetKeywords, keywordRows(analysis.KeywordCounts)); err != nil {
		return err
	}

	if err := writeRows(f, SheetResponses, responseRows(report.Responses)); err != nil {
		return err
	}

	return f.Write(w)
}

func keywordRows(counts map[string]int) [][]any {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	rows := [][]any{{"Keyword", "Count"}}
	for _, k := range keys {
		rows = append(rows, []any{k, counts[k]})
	}
	return rows
}

func responseRows(responses []model.SurveyResponse) [][]any {
	header := []any{"#", "Submitted at"}
	for n := 1; n <= model.QuestionCount; n++ {
		header = append(header, fmt.Sprintf("Q%d", n))
	}
	header = append(header, "Keywords")

	rows := [][]any{header}
	for i, r := range responses {
		row := []any{i + 1, ""}
		if !r.SubmittedAt.IsZero() {
			row[1] = r.SubmittedAt.UTC().Format(time.RFC3339)
		}
		for n := 0; n < model.QuestionCount; n++ {
			if n < len(r.Answers) {
				row = append(row, r.Answers[n])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, strings.Join(r.Keywords, ", "))
		rows = append(rows, row)
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
