package vnl

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/table"
)

// MatchColumns are the column names of the round-robin match table, which has no usable header
var MatchColumns = []string{
	"number", "date", "teams", "sets",
	"set1_point", "set2_point", "set3_point", "set4_point", "set5_point",
	"pionts", "time", "audience",
}

// SetNotPlayed is the placeholder shown for sets a match did not reach
const SetNotPlayed = "-"

const matchTableIndex = 1

var setScorePattern = regexp.MustCompile(`^(\d+)\D+(\d+)$`)

// MatchSummary extracts the round-robin match list with normalized set scores
func (s *Scraper) MatchSummary(ctx context.Context) (*dataset.Collection, error) {
	c, err := s.extractor.Extract(ctx, s.site.ResultsURL(), table.Options{
		TableIndex:      matchTableIndex,
		OverrideColumns: MatchColumns,
		CellIsSpanned:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("match summary: %w", err)
	}

	for i := 1; i <= 5; i++ {
		if err := c.MapColumn(fmt.Sprintf("set%d_point", i), FormatSetPoints); err != nil {
			return nil, fmt.Errorf("match summary: %w", err)
		}
	}

	return c, nil
}

// FormatSetPoints turns a flattened set score such as "25---20" or "9-15" into "A-B".
// Unplayed sets ("-" or empty) are returned unchanged. Each side must be a one or two digit
// score; anything else is rejected.
func FormatSetPoints(v string) (string, error) {
	if v == SetNotPlayed || v == "" {
		return v, nil
	}

	m := setScorePattern.FindStringSubmatch(v)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrBadSetScore, v)
	}
	if len(m[1]) > 2 || len(m[2]) > 2 {
		return "", fmt.Errorf("%w: %q: scores must be 0-99", ErrBadSetScore, v)
	}

	return m[1] + "-" + m[2], nil
}
