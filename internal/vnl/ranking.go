package vnl

import (
	"context"
	"fmt"
	"strings"

	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/table"
)

var rankingLeading = []string{"rank", "team_full", "match_total", "match_win", "match_lose"}

// The ranking table's second header row has no cells over rank, flag and team name
const (
	rankingHeaderRow   = 1
	rankingBlankPrefix = 3
	rankingEmptyColumn = 2
)

// TeamRanking extracts the round-robin standings with a derived team abbreviation column
func (s *Scraper) TeamRanking(ctx context.Context) (*dataset.Collection, error) {
	c, err := s.extractor.Extract(ctx, s.site.ResultsURL(), table.Options{
		HeaderRowIndex:      rankingHeaderRow,
		LeadingBlankColumns: rankingBlankPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("team ranking: %w", err)
	}

	if err := c.DropColumn(rankingEmptyColumn); err != nil {
		return nil, fmt.Errorf("team ranking: %w", err)
	}

	names, err := rankingColumns(c.Columns)
	if err != nil {
		return nil, fmt.Errorf("team ranking: %w", err)
	}
	if err := c.RenameColumns(names); err != nil {
		return nil, fmt.Errorf("team ranking: %w", err)
	}

	err = c.SetColumn("team", func(_ int, rec dataset.Record) (string, error) {
		return s.teams.Abbr(rec["team_full"])
	})
	if err != nil {
		return nil, fmt.Errorf("team ranking: %w", err)
	}

	return c, nil
}

// rankingColumns maps the deduplicated ranking header to readable names. The second
// occurrence of a header ("0/won") belongs to sets and the third ("1/won") to points.
func rankingColumns(columns []string) ([]string, error) {
	if len(columns) < len(rankingLeading)+4 {
		return nil, fmt.Errorf("%w: %d", ErrShortRanking, len(columns))
	}

	names := make([]string, len(columns))
	for i, name := range columns {
		switch {
		case strings.HasPrefix(name, "0/"):
			names[i] = "set_" + strings.TrimPrefix(name, "0/")
		case strings.HasPrefix(name, "1/"):
			names[i] = "point_" + strings.TrimPrefix(name, "1/")
		default:
			names[i] = name
		}
	}

	copy(names, rankingLeading)
	names[len(names)-1] = "point_ratio"
	names[len(names)-4] = "set_ratio"

	return names, nil
}
