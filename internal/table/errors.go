package table

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotFound     = errors.New("table not found")
	ErrHeaderRowNotFound = errors.New("header row not found")
	ErrHeaderSpanMissing = errors.New("header cell has no span")
	ErrTooManyCells      = errors.New("row has more cells than columns")
	ErrDuplicateColumn   = errors.New("duplicate override column")
)

// ExtractError describes where in a document extraction failed
type ExtractError struct {
	TableIndex int
	Row        int // body row index, -1 when not row-specific
	Err        error
	Detail     string
}

func (e *ExtractError) Error() string {
	msg := fmt.Sprintf("table %d", e.TableIndex)
	if e.Row >= 0 {
		msg += fmt.Sprintf(", row %d", e.Row)
	}
	msg += ": " + e.Err.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
