package vnl

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
	"github.com/pfrederiksen/vnl-stats/internal/table"
)

// Categories are the best-player leaderboards, in the order their tables appear on the
// statistics page
var Categories = []string{
	"best-scorers",
	"best-spikers",
	"best-blockers",
	"best-servers",
	"best-setters",
	"best-diggers",
	"best-receivers",
}

// Leaderboard is one ranked best-player table
type Leaderboard struct {
	Category string
	Data     *dataset.Collection
}

// BestPlayers extracts every leaderboard on the statistics page
func (s *Scraper) BestPlayers(ctx context.Context) ([]Leaderboard, error) {
	boards := make([]Leaderboard, 0, len(Categories))
	for i, category := range Categories {
		c, err := s.Leaderboard(ctx, i)
		if err != nil {
			return nil, err
		}
		boards = append(boards, Leaderboard{Category: category, Data: c})
	}
	return boards, nil
}

// Leaderboard extracts the leaderboard at index in Categories. The trailing "load more"
// row is dropped and a 1-based rank column is appended, replacing a rank column the page
// already carries.
func (s *Scraper) Leaderboard(ctx context.Context, index int) (*dataset.Collection, error) {
	if index < 0 || index >= len(Categories) {
		return nil, fmt.Errorf("leaderboard index %d out of range", index)
	}
	category := Categories[index]

	c, err := s.extractor.Extract(ctx, s.site.StatisticsURL(), table.Options{TableIndex: index})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", category, err)
	}

	c.DropLastRow()

	if c.ColumnIndex("rank") >= 0 {
		logger.Warn("Replacing rank column from page", logger.Fields{"category": category})
	}

	err = c.SetColumn("rank", func(i int, _ dataset.Record) (string, error) {
		return strconv.Itoa(i + 1), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", category, err)
	}

	return c, nil
}
