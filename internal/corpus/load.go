package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// LoadResumes reads the resume dataset from a CSV file with a header row.
// Required columns: Name, Resume_ID, Skills.
func LoadResumes(path string) (*Resumes, error) {
	records, err := readRecords(path, []string{ResumeNameField, ResumeIDField, ResumeSkillsField})
	if err != nil {
		return nil, fmt.Errorf("loading resumes: %w", err)
	}

	var items []*Resume
	if err := decodeRecords(records, &items); err != nil {
		return nil, fmt.Errorf("decoding resumes: %w", err)
	}

	return &Resumes{Items: items}, nil
}

// LoadJobs reads the job dataset from a CSV file with a header row.
// Required columns: Job Title, Required Skills.
func LoadJobs(path string) (*Jobs, error) {
	records, err := readRecords(path, []string{JobTitleField, JobSkillsField})
	if err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}

	var items []*Job
	if err := decodeRecords(records, &items); err != nil {
		return nil, fmt.Errorf("decoding jobs: %w", err)
	}

	return &Jobs{Items: items}, nil
}

// readRecords parses a header-keyed CSV file into one map per data record and
// verifies every required field is present and non-empty.
func readRecords(path string, required []string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseRecords(file, required)
}

// ParseRecords reads header-keyed CSV records from r, validating the required
// fields of every record.
func ParseRecords(r io.Reader, required []string) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &MissingFieldError{Field: strings.Join(required, ", ")}
		}
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.TrimSpace(name)] = idx
	}

	for _, field := range required {
		if _, ok := columns[field]; !ok {
			return nil, &MissingFieldError{Field: field}
		}
	}

	var records []map[string]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(row) {
				record[name] = row[idx]
			}
		}

		for _, field := range required {
			if strings.TrimSpace(record[field]) == "" {
				return nil, &MissingFieldError{Record: len(records) + 1, Field: field}
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func decodeRecords(records []map[string]string, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   result,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(records)
}
