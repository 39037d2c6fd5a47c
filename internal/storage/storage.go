package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
	"github.com/xuri/excelize/v2"
)

// Format is an output file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'csv' or 'xlsx')", s)
	}
}

// Storage writes datasets into a directory
type Storage struct {
	dir    string
	format Format
}

// New creates a Storage writing files of the given format into dir
func New(dir string, format Format) (*Storage, error) {
	if dir == "" {
		dir = "."
	}

	// Expand ~ to home directory
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	if format == "" {
		format = FormatCSV
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	return &Storage{
		dir:    dir,
		format: format,
	}, nil
}

// Path returns the file a dataset name is written to
func (s *Storage) Path(name string) string {
	return filepath.Join(s.dir, name+"."+string(s.format))
}

// Write saves c as the named dataset and returns the file path
func (s *Storage) Write(name string, c *dataset.Collection) (string, error) {
	path := s.Path(name)

	var err error
	switch s.format {
	case FormatXLSX:
		err = writeXLSX(path, name, c)
	default:
		err = writeCSV(path, c)
	}
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Info("Dataset saved", logger.Fields{
		"path":    path,
		"rows":    c.Len(),
		"columns": len(c.Columns),
	})
	logger.IncrCounter("files.written")
	logger.AddCounter("rows.written", int64(c.Len()))

	return path, nil
}

// writeCSV writes a header row followed by one row per record
func writeCSV(path string, c *dataset.Collection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(c.Columns); err != nil {
		return err
	}
	for i := range c.Rows {
		if err := w.Write(c.Values(i)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}

// writeXLSX writes the collection to a single-sheet workbook
func writeXLSX(path, name string, c *dataset.Collection) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(name)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	if err := sw.SetRow("A1", toRow(c.Columns)); err != nil {
		return err
	}
	for i := range c.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, toRow(c.Values(i))); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

// sheetName fits a dataset name into Excel's 31 character sheet name limit
func sheetName(name string) string {
	if name == "" {
		return "Sheet1"
	}
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
