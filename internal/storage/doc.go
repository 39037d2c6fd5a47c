// Package storage writes record collections to files.
//
// Each dataset becomes one file in the output directory, named after the dataset:
// comma-separated values with a header row (no index column), or an Excel workbook with a
// single sheet. The default output directory is the current working directory.
package storage
