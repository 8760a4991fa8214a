// Package sheet reads company input workbooks and writes the enriched
// two-sheet result workbook (Data + Methodology).
package sheet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"jobscout-engine/internal/domain"
)

const (
	DataSheet        = "Data"
	MethodologySheet = "Methodology"
)

var ErrNoCompanyColumn = errors.New("no company-like column found")

// header returns the Data sheet column names in output order.
func header() []string {
	cols := []string{
		"Company Name", "Website URL", "Linkedin URL",
		"Careers Page URL", "Job listings page URL",
	}
	for i := 1; i <= domain.MaxJobs; i++ {
		cols = append(cols,
			fmt.Sprintf("job post%d title", i),
			fmt.Sprintf("job post%d URL", i),
			fmt.Sprintf("job post%d location", i),
			fmt.Sprintf("job post%d description", i),
		)
	}
	return append(cols, "Notes")
}

// ReadCompanies loads records from the first sheet of an xlsx workbook.
// The company column is the first header containing "company",
// case-insensitive. When the workbook is a previous output snapshot, its
// enrichment columns are loaded too, so a re-run only fills gaps.
func ReadCompanies(path string) ([]domain.CompanyRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("workbook is empty")
	}

	head := rows[0]
	companyCol := -1
	colIdx := map[string]int{}
	for i, h := range head {
		key := strings.ToLower(strings.TrimSpace(h))
		if companyCol < 0 && strings.Contains(key, "company") {
			companyCol = i
		}
		colIdx[key] = i
	}
	if companyCol < 0 {
		return nil, ErrNoCompanyColumn
	}

	cell := func(row []string, name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []domain.CompanyRecord
	for _, row := range rows[1:] {
		name := ""
		if companyCol < len(row) {
			name = strings.TrimSpace(row[companyCol])
		}
		rec := domain.CompanyRecord{
			Name:        name,
			WebsiteURL:  cell(row, "website url"),
			LinkedInURL: cell(row, "linkedin url"),
			CareersURL:  cell(row, "careers page url"),
			JobsPageURL: cell(row, "job listings page url"),
			Note:        cell(row, "notes"),
		}
		for i := 1; i <= domain.MaxJobs; i++ {
			p := domain.JobPosting{
				Title:       cell(row, fmt.Sprintf("job post%d title", i)),
				URL:         cell(row, fmt.Sprintf("job post%d url", i)),
				Location:    cell(row, fmt.Sprintf("job post%d location", i)),
				Description: cell(row, fmt.Sprintf("job post%d description", i)),
			}
			rec.AddJob(p)
		}
		records = append(records, rec)
	}

	return records, nil
}

// WriteResults writes the Data and Methodology sheets to path, one Data
// row per record in input order.
func WriteResults(path string, records []domain.CompanyRecord, methodology [][2]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return err
	}

	head := header()
	row := make([]interface{}, len(head))
	for i, h := range head {
		row[i] = h
	}
	if err := setRow(f, DataSheet, 1, row); err != nil {
		return err
	}

	for n, rec := range records {
		vals := []interface{}{
			rec.Name, rec.WebsiteURL, rec.LinkedInURL, rec.CareersURL, rec.JobsPageURL,
		}
		for i := 0; i < domain.MaxJobs; i++ {
			var p domain.JobPosting
			if i < len(rec.Jobs) {
				p = rec.Jobs[i]
			}
			vals = append(vals, p.Title, p.URL, p.Location, p.Description)
		}
		vals = append(vals, rec.Note)
		if err := setRow(f, DataSheet, n+2, vals); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(MethodologySheet); err != nil {
		return err
	}
	if err := setRow(f, MethodologySheet, 1, []interface{}{"Category", "Description"}); err != nil {
		return err
	}
	for n, m := range methodology {
		if err := setRow(f, MethodologySheet, n+2, []interface{}{m[0], m[1]}); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, vals []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &vals)
}
