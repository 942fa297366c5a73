// Package locationcsv loads the administrative tree from CSV files and feeds it to the location usecase.
package locationcsv

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strings"

	"bookstore/internal/domain/entity"

	"github.com/pkg/errors"
)

// Expected CSV format: code,name,type,parent_code
const columnCount = 4

// Record is one row of a location CSV file.
type Record struct {
	Line       int
	Code       string
	Name       string
	Type       entity.LocationType
	ParentCode string
}

// LoadFile reads every record of the CSV file at path.
func LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return Load(file)
}

// Load reads every record from r. The first row is a header and is skipped.
func Load(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// Skip header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}

		return nil, errors.WithStack(err)
	}

	var records []Record
	lineNum := 1

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(row) < columnCount {
			return nil, errors.Errorf("invalid location csv at line %d: expected %d columns, got %d", lineNum, columnCount, len(row))
		}

		record, parseErr := parseRecord(row, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		records = append(records, record)
	}

	return records, nil
}

func parseRecord(row []string, lineNum int) (Record, error) {
	record := Record{
		Line:       lineNum,
		Code:       strings.TrimSpace(row[0]),
		Name:       strings.TrimSpace(row[1]),
		Type:       entity.LocationType(strings.ToUpper(strings.TrimSpace(row[2]))),
		ParentCode: strings.TrimSpace(row[3]),
	}

	if record.Code == "" || record.Name == "" {
		return Record{}, errors.Errorf("line %d: code and name are required", lineNum)
	}
	if !record.Type.IsValid() {
		return Record{}, errors.Errorf("line %d: unknown location type %q", lineNum, row[2])
	}

	return record, nil
}

// Order sorts records so that every level precedes the level below it. Rows of the same
// level keep their file order.
func Order(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Type.Level() < records[j].Type.Level()
	})
}

// Validate checks the rows against each other: codes are unique, provinces have no parent,
// and a parent present in the file sits exactly one level above its child. Parents missing
// from the file are assumed to exist in the database already.
func Validate(records []Record) []error {
	byCode := make(map[string]Record, len(records))
	var problems []error

	for _, record := range records {
		if previous, dup := byCode[record.Code]; dup {
			problems = append(problems, errors.Errorf("line %d: code %s already defined at line %d", record.Line, record.Code, previous.Line))

			continue
		}
		byCode[record.Code] = record
	}

	for _, record := range records {
		if record.Type.IsRoot() {
			if record.ParentCode != "" {
				problems = append(problems, errors.Errorf("line %d: %s %s cannot have a parent", record.Line, record.Type, record.Code))
			}

			continue
		}
		if record.ParentCode == "" {
			problems = append(problems, errors.Errorf("line %d: %s %s needs a parent", record.Line, record.Type, record.Code))

			continue
		}
		if parent, ok := byCode[record.ParentCode]; ok && !parent.Type.CanParent(record.Type) {
			problems = append(problems, errors.Errorf("line %d: %s %s cannot sit under %s %s",
				record.Line, record.Type, record.Code, parent.Type, parent.Code))
		}
	}

	return problems
}
