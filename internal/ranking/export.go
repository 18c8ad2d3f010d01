package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/Vishakha-Patel-66/ResumeRanking/internal/corpus"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/utils"
)

// Row is one renderable line of a ranking: the resume fields joined with the
// score. Column order is fixed for both the table and the CSV export.
type Row struct {
	Name     string
	ResumeID string
	Skills   string
	Score    float64
}

var csvHeader = []string{"Name", "Resume_ID", "Skills", "Score"}

// maxSkillsCell keeps long skill descriptions readable in the table output.
const maxSkillsCell = 60

// Rows joins ranked entries with their resume records.
func Rows(result *Result, resumes *corpus.Resumes) ([]Row, error) {
	byID := make(map[string]*corpus.Resume, resumes.Len())
	for _, item := range resumes.Items {
		byID[item.ID] = item
	}

	rows := make([]Row, 0, len(result.Entries))
	for _, entry := range result.Entries {
		resume, ok := byID[entry.ID]
		if !ok {
			return nil, fmt.Errorf("ranked id %q is not in the resume set", entry.ID)
		}
		rows = append(rows, Row{
			Name:     resume.Name,
			ResumeID: resume.ID,
			Skills:   resume.Skills,
			Score:    entry.Score,
		})
	}

	return rows, nil
}

// WriteCSV exports rows as delimited text with a header row, no index column
// and the score at three decimals.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Name,
			row.ResumeID,
			row.Skills,
			strconv.FormatFloat(row.Score, 'f', 3, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing record for %s: %w", row.ResumeID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV parses rows previously produced by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("unexpected header: %v", header)
	}
	for i, name := range csvHeader {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected header column %d: %q", i, header[i])
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		score, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing score %q: %w", record[3], err)
		}

		rows = append(rows, Row{
			Name:     record[0],
			ResumeID: record[1],
			Skills:   record[2],
			Score:    score,
		})
	}

	return rows, nil
}

// RenderTable writes rows as an aligned text table with the fixed
// [Name, Resume_ID, Skills, Score] columns.
func RenderTable(w io.Writer, rows []Row) error {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(table, "NAME\tRESUME_ID\tSKILLS\tSCORE")
	for _, row := range rows {
		fmt.Fprintf(table, "%s\t%s\t%s\t%.3f\n",
			row.Name,
			row.ResumeID,
			utils.TruncateForLog(row.Skills, maxSkillsCell),
			row.Score,
		)
	}

	return table.Flush()
}
