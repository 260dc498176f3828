package seeder

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Burns17/book-pass-on/internal/domain"
)

var (
	//go:embed data/students.csv
	studentsCSV string

	//go:embed data/textbooks.csv
	textbooksCSV string
)

type studentRecord struct {
	StudentIDNum string
	FirstName    string
	LastName     string
	Email        string
}

type bookRecord struct {
	Title     string
	Author    string
	ISBN      string
	Edition   string
	Condition domain.TextbookCondition
}

// readCSV returns the records of r without its header row. Every record
// must have exactly fields columns.
func readCSV(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	var out [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

func parseStudents(r io.Reader) ([]studentRecord, error) {
	rows, err := readCSV(r, 4)
	if err != nil {
		return nil, fmt.Errorf("parse students: %w", err)
	}

	out := make([]studentRecord, 0, len(rows))
	for i, rec := range rows {
		s := studentRecord{
			StudentIDNum: strings.TrimSpace(rec[0]),
			FirstName:    strings.TrimSpace(rec[1]),
			LastName:     strings.TrimSpace(rec[2]),
			Email:        strings.ToLower(strings.TrimSpace(rec[3])),
		}
		if s.StudentIDNum == "" || s.Email == "" {
			return nil, fmt.Errorf("parse students: line %d: student number and email are required", i+2)
		}
		out = append(out, s)
	}
	return out, nil
}

func parseTextbooks(r io.Reader) ([]bookRecord, error) {
	rows, err := readCSV(r, 5)
	if err != nil {
		return nil, fmt.Errorf("parse textbooks: %w", err)
	}

	out := make([]bookRecord, 0, len(rows))
	for i, rec := range rows {
		cond, err := parseCondition(rec[4])
		if err != nil {
			return nil, fmt.Errorf("parse textbooks: line %d: %w", i+2, err)
		}
		b := bookRecord{
			Title:     strings.TrimSpace(rec[0]),
			Author:    strings.TrimSpace(rec[1]),
			ISBN:      strings.TrimSpace(rec[2]),
			Edition:   strings.TrimSpace(rec[3]),
			Condition: cond,
		}
		if b.Title == "" {
			return nil, fmt.Errorf("parse textbooks: line %d: title is required", i+2)
		}
		out = append(out, b)
	}
	return out, nil
}

// parseCondition accepts the catalog conditions plus the legacy "excellent".
func parseCondition(s string) (domain.TextbookCondition, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "excellent" {
		return domain.ConditionLikeNew, nil
	}
	c := domain.TextbookCondition(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown condition %q", s)
	}
	return c, nil
}
