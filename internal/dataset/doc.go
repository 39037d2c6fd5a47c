// Package dataset provides the in-memory record collection produced by table extraction.
//
// A Collection is an ordered list of columns plus an ordered list of records, each record
// mapping a column name to its string value. Collections are built up in memory by the
// extractors and handed to the storage writer once, so page-specific post-processing
// (dropping, renaming and computing columns) happens on plain slices and maps.
package dataset
