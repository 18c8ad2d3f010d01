// Package corpus holds the typed input records of a screening session: the
// resume set used to fit the vocabulary and the job postings used as queries.
package corpus

import (
	"fmt"
	"strings"
)

const (
	ResumeNameField   = "Name"
	ResumeIDField     = "Resume_ID"
	ResumeSkillsField = "Skills"

	JobTitleField  = "Job Title"
	JobSkillsField = "Required Skills"
)

// MissingFieldError reports a required text field absent from an input
// record. It is fatal for the record's batch.
type MissingFieldError struct {
	// Record is the 1-based data record number; 0 means the header row.
	Record int
	Field  string
}

func (e *MissingFieldError) Error() string {
	if e.Record == 0 {
		return fmt.Sprintf("missing required column %q", e.Field)
	}
	return fmt.Sprintf("record %d: missing required field %q", e.Record, e.Field)
}

// Resume is a single candidate record.
type Resume struct {
	Name   string `mapstructure:"Name"`
	ID     string `mapstructure:"Resume_ID"`
	Skills string `mapstructure:"Skills"`
}

type Resumes struct {
	Items []*Resume
}

func (r *Resumes) Len() int {
	return len(r.Items)
}

// IDs returns resume ids in corpus order.
func (r *Resumes) IDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// SkillTexts returns the raw skill descriptions in corpus order.
func (r *Resumes) SkillTexts() []string {
	texts := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		texts = append(texts, item.Skills)
	}
	return texts
}

// FindByID returns the corpus position of the resume with the given id, or -1.
func (r *Resumes) FindByID(id string) int {
	for idx, item := range r.Items {
		if item.ID == id {
			return idx
		}
	}
	return -1
}

// Search returns corpus positions of resumes whose name contains the query
// (case-insensitive) or whose id contains it verbatim. An empty query matches
// nothing.
func (r *Resumes) Search(query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	lowered := strings.ToLower(query)
	var matched []int
	for idx, item := range r.Items {
		if strings.Contains(strings.ToLower(item.Name), lowered) || strings.Contains(item.ID, query) {
			matched = append(matched, idx)
		}
	}
	return matched
}

// Job is a single posting record; its required skills form a query document.
type Job struct {
	Title  string `mapstructure:"Job Title"`
	Skills string `mapstructure:"Required Skills"`
}

type Jobs struct {
	Items []*Job
}

func (j *Jobs) Len() int {
	return len(j.Items)
}

// Titles returns job titles in corpus order.
func (j *Jobs) Titles() []string {
	titles := make([]string, 0, len(j.Items))
	for _, item := range j.Items {
		titles = append(titles, item.Title)
	}
	return titles
}

func (j *Jobs) FindByTitle(title string) *Job {
	for _, item := range j.Items {
		if item.Title == title {
			return item
		}
	}
	return nil
}
