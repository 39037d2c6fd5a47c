package cli

import (
	"fmt"
	"io"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
	"github.com/pfrederiksen/vnl-stats/internal/storage"
)

// Sink receives finished datasets
type Sink interface {
	Save(name string, c *dataset.Collection) error
}

// FileSink writes datasets to files through storage
type FileSink struct {
	store *storage.Storage
	out   io.Writer
}

// NewFileSink creates a sink writing into store and reporting saved paths to out
func NewFileSink(store *storage.Storage, out io.Writer) *FileSink {
	return &FileSink{store: store, out: out}
}

// Save writes the dataset and prints the saved path
func (s *FileSink) Save(name string, c *dataset.Collection) error {
	path, err := s.store.Write(name, c)
	if err != nil {
		return err
	}
	logger.SetGauge("rows."+name, float64(c.Len()))
	fmt.Fprintf(s.out, "%s saved.\n", path)
	return nil
}

// PreviewSink renders datasets as text tables instead of writing files
type PreviewSink struct {
	out io.Writer
}

// NewPreviewSink creates a sink rendering to out
func NewPreviewSink(out io.Writer) *PreviewSink {
	return &PreviewSink{out: out}
}

// Save renders the dataset
func (s *PreviewSink) Save(name string, c *dataset.Collection) error {
	t := prettytable.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetTitle(fmt.Sprintf("%s (%d rows)", name, c.Len()))
	t.AppendHeader(toRow(c.Columns))

	for i := range c.Rows {
		t.AppendRow(toRow(c.Values(i)))
	}

	t.SetStyle(prettytable.StyleRounded)
	t.Render()
	fmt.Fprintln(s.out)
	return nil
}

func toRow(values []string) prettytable.Row {
	row := make(prettytable.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
