// Package table extracts HTML tables into record collections.
//
// Parse locates a table by its zero-based index among all tables in a document, derives
// column names from a header row (or takes them verbatim from an override list), normalizes
// and deduplicates those names, and pairs every data cell of each body row with its column.
// Cells made of several sub-elements (for example set scores split across spans) can be
// flattened into a single hyphen-joined value.
//
// Extractor combines Parse with a Fetcher so page-specific callers only supply a URL and
// Options.
package table
