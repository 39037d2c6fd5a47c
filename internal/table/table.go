package table

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
)

// Options control how a table is located and flattened
type Options struct {
	// TableIndex is the zero-based position of the table among all tables in the document
	TableIndex int
	// HeaderRowIsSpanned reads header labels from the first nested span of each header cell
	HeaderRowIsSpanned bool
	// HeaderRowIndex selects which header row holds the column names
	HeaderRowIndex int
	// LeadingBlankColumns prepends this many unnamed columns, for body cells with no header
	LeadingBlankColumns int
	// OverrideColumns, when non-nil, is used verbatim instead of the header row
	OverrideColumns []string
	// CellIsSpanned joins the texts of a cell's spans with "-" instead of taking its raw text
	CellIsSpanned bool
}

// Fetcher retrieves the raw document at a URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor fetches pages and extracts tables from them
type Extractor struct {
	fetcher Fetcher
}

// NewExtractor creates an Extractor backed by fetcher
func NewExtractor(fetcher Fetcher) *Extractor {
	return &Extractor{fetcher: fetcher}
}

// Extract fetches url and extracts the table selected by opts
func (e *Extractor) Extract(ctx context.Context, url string, opts Options) (*dataset.Collection, error) {
	body, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	c, err := Parse(bytes.NewReader(body), opts)
	if err != nil {
		return nil, fmt.Errorf("extracting from %s: %w", url, err)
	}

	logger.Debug("Extracted table", logger.Fields{
		"url":     url,
		"table":   opts.TableIndex,
		"columns": len(c.Columns),
		"rows":    c.Len(),
	})
	logger.IncrCounter("tables.extracted")

	return c, nil
}

// Parse extracts the table selected by opts from an HTML document
func Parse(r io.Reader, opts Options) (*dataset.Collection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return ParseDocument(doc, opts)
}

// ParseDocument extracts the table selected by opts from an already parsed document
func ParseDocument(doc *goquery.Document, opts Options) (*dataset.Collection, error) {
	tables := doc.Find("table")
	if opts.TableIndex < 0 || opts.TableIndex >= tables.Length() {
		return nil, &ExtractError{
			TableIndex: opts.TableIndex,
			Row:        -1,
			Err:        ErrTableNotFound,
			Detail:     fmt.Sprintf("document has %d tables", tables.Length()),
		}
	}
	table := tables.Eq(opts.TableIndex)

	columns, err := columnNames(table, opts)
	if err != nil {
		return nil, err
	}

	c := dataset.New(columns)
	for i, tr := range bodyRows(table) {
		cells := tr.ChildrenFiltered("td")
		// Rows without data cells are separators or header rows
		if cells.Length() == 0 {
			continue
		}

		values := make([]string, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			values = append(values, cellValue(td, opts.CellIsSpanned))
		})

		rec, err := zipRow(columns, values)
		if err != nil {
			return nil, &ExtractError{TableIndex: opts.TableIndex, Row: i, Err: err, Detail: fmt.Sprintf("%d cells, %d columns", len(values), len(columns))}
		}
		c.Append(rec)
	}

	return c, nil
}

// columnNames derives the column list from the header row, or returns the overrides
func columnNames(table *goquery.Selection, opts Options) ([]string, error) {
	if opts.OverrideColumns != nil {
		seen := make(map[string]bool, len(opts.OverrideColumns))
		for _, name := range opts.OverrideColumns {
			if seen[name] {
				return nil, &ExtractError{TableIndex: opts.TableIndex, Row: -1, Err: ErrDuplicateColumn, Detail: name}
			}
			seen[name] = true
		}
		columns := make([]string, len(opts.OverrideColumns))
		copy(columns, opts.OverrideColumns)
		return columns, nil
	}

	if opts.LeadingBlankColumns < 0 {
		return nil, fmt.Errorf("table %d: negative leading blank columns: %d", opts.TableIndex, opts.LeadingBlankColumns)
	}

	rows := headerRows(table)
	if opts.HeaderRowIndex < 0 || opts.HeaderRowIndex >= len(rows) {
		return nil, &ExtractError{
			TableIndex: opts.TableIndex,
			Row:        -1,
			Err:        ErrHeaderRowNotFound,
			Detail:     fmt.Sprintf("index %d, table has %d header rows", opts.HeaderRowIndex, len(rows)),
		}
	}

	names := make([]string, opts.LeadingBlankColumns, opts.LeadingBlankColumns+8)
	var spanErr error
	rows[opts.HeaderRowIndex].ChildrenFiltered("th").EachWithBreak(func(i int, th *goquery.Selection) bool {
		text := th.Text()
		if opts.HeaderRowIsSpanned {
			span := th.Find("span").First()
			if span.Length() == 0 {
				spanErr = &ExtractError{TableIndex: opts.TableIndex, Row: -1, Err: ErrHeaderSpanMissing, Detail: fmt.Sprintf("header cell %d", i)}
				return false
			}
			text = span.Text()
		}
		names = append(names, strings.TrimSpace(text))
		return true
	})
	if spanErr != nil {
		return nil, spanErr
	}

	for i, name := range names {
		names[i] = Normalize(name)
	}
	return Dedupe(names), nil
}

// headerRows returns the rows of the table's thead. Tables without a thead fall back to
// rows made only of th cells.
func headerRows(table *goquery.Selection) []*goquery.Selection {
	rows := make([]*goquery.Selection, 0)

	thead := table.ChildrenFiltered("thead")
	if thead.Length() > 0 {
		thead.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
			rows = append(rows, tr)
		})
		return rows
	}

	for _, tr := range bodyRows(table) {
		if tr.ChildrenFiltered("th").Length() > 0 && tr.ChildrenFiltered("td").Length() == 0 {
			rows = append(rows, tr)
		}
	}
	return rows
}

// bodyRows returns the rows of every tbody directly under table, in document order
func bodyRows(table *goquery.Selection) []*goquery.Selection {
	rows := make([]*goquery.Selection, 0)
	table.ChildrenFiltered("tbody").ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, tr)
	})
	return rows
}

// cellValue returns the trimmed text of a cell. Spanned cells with nested spans yield the
// trimmed span texts joined with "-".
func cellValue(td *goquery.Selection, spanned bool) string {
	if spanned {
		spans := td.Find("span")
		if spans.Length() > 0 {
			parts := make([]string, 0, spans.Length())
			spans.Each(func(_ int, span *goquery.Selection) {
				parts = append(parts, strings.TrimSpace(span.Text()))
			})
			return strings.Join(parts, "-")
		}
	}
	return strings.TrimSpace(td.Text())
}

// zipRow pairs values with columns by position. Rows shorter than the column list leave
// the trailing columns absent; longer rows are an error.
func zipRow(columns, values []string) (dataset.Record, error) {
	if len(values) > len(columns) {
		return nil, ErrTooManyCells
	}
	rec := make(dataset.Record, len(values))
	for i, v := range values {
		rec[columns[i]] = v
	}
	return rec, nil
}
