// Package records loads the chart records of the boxchart command from
// YAML files and Excel workbooks.
package records

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vdobler/boxchart"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupported indicates a records file of unknown type.
var ErrUnsupported = errors.New("unsupported records file")

// Record is one row of input: a box plot item and, for line charts, a
// plain y value.
type Record struct {
	X           float64   `yaml:"x"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
	Max         float64   `yaml:"max"`
	Q3          float64   `yaml:"q3"`
	Median      *float64  `yaml:"median"`
	Q1          float64   `yaml:"q1"`
	Min         float64   `yaml:"min"`
	Outliers    []float64 `yaml:"outliers"`
	Y           float64   `yaml:"y"`
}

// BoxAccessors returns the accessors of a box chart of records.
func BoxAccessors() boxchart.BoxAccessors[Record] {
	return boxchart.BoxAccessors[Record]{
		X:           func(r Record) float64 { return r.X },
		Category:    func(r Record) string { return r.Category },
		Description: func(r Record) string { return r.Description },
		Max:         func(r Record) float64 { return r.Max },
		Min:         func(r Record) float64 { return r.Min },
		Q1:          func(r Record) float64 { return r.Q1 },
		Q3:          func(r Record) float64 { return r.Q3 },
		Median: func(r Record) (float64, bool) {
			if r.Median == nil {
				return 0, false
			}
			return *r.Median, true
		},
		Outliers: func(r Record) []float64 { return r.Outliers },
	}
}

// SeriesAccessors returns the accessors of a line chart of records.
func SeriesAccessors() boxchart.Accessors[Record] {
	return boxchart.Accessors[Record]{
		X:        func(r Record) float64 { return r.X },
		Y:        func(r Record) float64 { return r.Y },
		Category: func(r Record) string { return r.Category },
	}
}

// Load reads records from a .yaml/.yml file or from the given sheet of an
// .xlsx workbook. An empty sheet name selects the first sheet.
func Load(path, sheet string) ([]Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading records: %w", err)
		}
		recs, err := ParseYAML(buf)
		if err != nil {
			return nil, fmt.Errorf("records %s: %w", path, err)
		}
		return recs, nil
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w %s (extension %q)", ErrUnsupported, path, ext)
	}
}

// ParseYAML parses a YAML sequence of records.
func ParseYAML(buf []byte) ([]Record, error) {
	var recs []Record
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// LoadXLSX reads records from a worksheet. The first row holds the column
// names x, category, description, max, q3, median, q1, min, outliers and
// y in any order and case; unknown columns are ignored. Outliers are
// separated by semicolons. Rows without any value are skipped.
func LoadXLSX(path, sheet string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	columns := make(map[int]string)
	for i, name := range rows[0] {
		columns[i] = strings.ToLower(strings.TrimSpace(name))
	}

	var recs []Record
	for r, row := range rows[1:] {
		var rec Record
		empty := true
		for c, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			empty = false
			if err := rec.set(columns[c], cell); err != nil {
				name, _ := excelize.CoordinatesToCellName(c+1, r+2)
				return nil, fmt.Errorf("cell %s: %w", name, err)
			}
		}
		if !empty {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (rec *Record) set(column, cell string) error {
	var err error
	num := func(dst *float64) {
		*dst, err = strconv.ParseFloat(cell, 64)
	}
	switch column {
	case "x":
		num(&rec.X)
	case "y":
		num(&rec.Y)
	case "max":
		num(&rec.Max)
	case "q3":
		num(&rec.Q3)
	case "q1":
		num(&rec.Q1)
	case "min":
		num(&rec.Min)
	case "median":
		var m float64
		num(&m)
		rec.Median = &m
	case "category":
		rec.Category = cell
	case "description":
		rec.Description = cell
	case "outliers":
		for _, field := range strings.Split(cell, ";") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			var o float64
			if o, err = strconv.ParseFloat(field, 64); err != nil {
				return err
			}
			rec.Outliers = append(rec.Outliers, o)
		}
	}
	return err
}
