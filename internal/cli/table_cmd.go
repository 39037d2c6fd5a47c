package cli

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/vnl-stats/internal/table"
	"github.com/spf13/cobra"
)

type tableFlags struct {
	url     string
	name    string
	opts    table.Options
	columns []string
	sortBy  string
	numeric bool
}

// tableCmd exposes the generic table extractor for an arbitrary page
func (a *app) tableCmd() *cobra.Command {
	f := &tableFlags{}

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Extract any table from a page",
		Example: `  # Second table on the results page, set scores flattened
  vnl-stats table --url https://en.volleyballworld.com/en/vnl/2019/women/resultsandranking/round1 --index 1 --cell-span --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTable(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.url, "url", "", "Page URL (required)")
	cmd.Flags().StringVar(&f.name, "name", "table", "Dataset name used for the output file")
	cmd.Flags().IntVar(&f.opts.TableIndex, "index", 0, "Zero-based table index on the page")
	cmd.Flags().IntVar(&f.opts.HeaderRowIndex, "header-row", 0, "Header row holding the column names")
	cmd.Flags().IntVar(&f.opts.LeadingBlankColumns, "blank-columns", 0, "Unnamed columns to prepend to the header")
	cmd.Flags().BoolVar(&f.opts.HeaderRowIsSpanned, "header-span", false, "Read header labels from nested spans")
	cmd.Flags().BoolVar(&f.opts.CellIsSpanned, "cell-span", false, "Join nested span texts of each cell with '-'")
	cmd.Flags().StringSliceVar(&f.columns, "columns", nil, "Explicit column names, bypassing the header")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Sort rows by this column")
	cmd.Flags().BoolVar(&f.numeric, "numeric", false, "Compare sort values as numbers")

	cmd.MarkFlagRequired("url")

	return cmd
}

func (a *app) runTable(cmd *cobra.Command, f *tableFlags) error {
	if f.name == "" {
		return fmt.Errorf("--name must not be empty")
	}
	if len(f.columns) > 0 {
		f.opts.OverrideColumns = f.columns
	}

	return a.run(cmd, "table", func(ctx context.Context, s *session) error {
		c, err := s.extractor.Extract(ctx, f.url, f.opts)
		if err != nil {
			return err
		}
		if f.sortBy != "" {
			if err := c.SortBy(f.sortBy, f.numeric); err != nil {
				return err
			}
		}
		return s.sink.Save(f.name, c)
	})
}
