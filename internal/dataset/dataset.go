package dataset

import (
	"fmt"
)

// Record maps a column name to a cell value
type Record map[string]string

// Collection is an ordered set of records sharing a column list
type Collection struct {
	Columns []string
	Rows    []Record
}

// New creates an empty collection with the given columns
func New(columns []string) *Collection {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Collection{
		Columns: cols,
		Rows:    make([]Record, 0),
	}
}

// Append adds a record to the end of the collection
func (c *Collection) Append(rec Record) {
	c.Rows = append(c.Rows, rec)
}

// Len returns the number of records
func (c *Collection) Len() int {
	return len(c.Rows)
}

// Value returns the value of column in row i, or "" when the cell is absent
func (c *Collection) Value(i int, column string) string {
	if i < 0 || i >= len(c.Rows) {
		return ""
	}
	return c.Rows[i][column]
}

// ColumnIndex returns the position of column, or -1 when it does not exist
func (c *Collection) ColumnIndex(column string) int {
	for i, name := range c.Columns {
		if name == column {
			return i
		}
	}
	return -1
}

// Values returns the cells of one record in column order
func (c *Collection) Values(i int) []string {
	values := make([]string, len(c.Columns))
	for j, name := range c.Columns {
		values[j] = c.Rows[i][name]
	}
	return values
}

// DropColumn removes the column at index and its values from every record
func (c *Collection) DropColumn(index int) error {
	if index < 0 || index >= len(c.Columns) {
		return fmt.Errorf("drop column: index %d out of range (%d columns)", index, len(c.Columns))
	}
	name := c.Columns[index]
	c.Columns = append(c.Columns[:index:index], c.Columns[index+1:]...)
	for _, rec := range c.Rows {
		delete(rec, name)
	}
	return nil
}

// RenameColumns replaces every column name positionally and rewrites record keys to match.
// The new names must be unique and as many as the current columns.
func (c *Collection) RenameColumns(names []string) error {
	if len(names) != len(c.Columns) {
		return fmt.Errorf("rename columns: got %d names for %d columns", len(names), len(c.Columns))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("rename columns: duplicate column %q", name)
		}
		seen[name] = true
	}

	for i, rec := range c.Rows {
		renamed := make(Record, len(rec))
		for j, old := range c.Columns {
			if v, ok := rec[old]; ok {
				renamed[names[j]] = v
			}
		}
		c.Rows[i] = renamed
	}

	cols := make([]string, len(names))
	copy(cols, names)
	c.Columns = cols
	return nil
}

// AddColumn appends a column whose value is computed from each record.
// The first error returned by fn aborts the operation and leaves the collection unchanged.
func (c *Collection) AddColumn(name string, fn func(i int, rec Record) (string, error)) error {
	if c.ColumnIndex(name) >= 0 {
		return fmt.Errorf("add column: column %q already exists", name)
	}

	values := make([]string, len(c.Rows))
	for i, rec := range c.Rows {
		v, err := fn(i, rec)
		if err != nil {
			return fmt.Errorf("add column %q, row %d: %w", name, i, err)
		}
		values[i] = v
	}

	c.Columns = append(c.Columns, name)
	for i, rec := range c.Rows {
		rec[name] = values[i]
	}
	return nil
}

// SetColumn computes a value for each record like AddColumn, but an existing column is
// overwritten in place instead of rejected.
func (c *Collection) SetColumn(name string, fn func(i int, rec Record) (string, error)) error {
	if c.ColumnIndex(name) < 0 {
		return c.AddColumn(name, fn)
	}

	values := make([]string, len(c.Rows))
	for i, rec := range c.Rows {
		v, err := fn(i, rec)
		if err != nil {
			return fmt.Errorf("set column %q, row %d: %w", name, i, err)
		}
		values[i] = v
	}

	for i, rec := range c.Rows {
		rec[name] = values[i]
	}
	return nil
}

// Stamp sets a column to the same value in every record, replacing an existing column
func (c *Collection) Stamp(name, value string) error {
	return c.SetColumn(name, func(int, Record) (string, error) {
		return value, nil
	})
}

// MapColumn rewrites every value of an existing column. Absent cells stay absent.
func (c *Collection) MapColumn(name string, fn func(string) (string, error)) error {
	if c.ColumnIndex(name) < 0 {
		return fmt.Errorf("map column: unknown column %q", name)
	}

	values := make(map[int]string, len(c.Rows))
	for i, rec := range c.Rows {
		old, ok := rec[name]
		if !ok {
			continue
		}
		v, err := fn(old)
		if err != nil {
			return fmt.Errorf("column %q, row %d: %w", name, i, err)
		}
		values[i] = v
	}
	for i, v := range values {
		c.Rows[i][name] = v
	}
	return nil
}

// DropLastRow removes the final record, if any
func (c *Collection) DropLastRow() {
	if len(c.Rows) == 0 {
		return
	}
	c.Rows = c.Rows[:len(c.Rows)-1]
}

// Concat joins collections in argument order. The resulting columns are the union of all
// input columns in order of first appearance; cells missing from a record stay empty.
func Concat(collections ...*Collection) *Collection {
	seen := make(map[string]bool)
	columns := make([]string, 0)
	for _, c := range collections {
		if c == nil {
			continue
		}
		for _, name := range c.Columns {
			if !seen[name] {
				seen[name] = true
				columns = append(columns, name)
			}
		}
	}

	out := New(columns)
	for _, c := range collections {
		if c == nil {
			continue
		}
		for _, rec := range c.Rows {
			copied := make(Record, len(rec))
			for k, v := range rec {
				copied[k] = v
			}
			out.Append(copied)
		}
	}
	return out
}
