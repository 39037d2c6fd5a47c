package vnl

import (
	"context"
	"fmt"
	"strings"

	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
	"github.com/pfrederiksen/vnl-stats/internal/table"
)

// Roster extracts the player roster of every team and concatenates them in team order
func (s *Scraper) Roster(ctx context.Context) (*dataset.Collection, error) {
	rosters := make([]*dataset.Collection, 0, s.teams.Len())
	for _, team := range s.teams.List() {
		c, err := s.TeamRoster(ctx, team)
		if err != nil {
			return nil, err
		}
		rosters = append(rosters, c)
	}
	return dataset.Concat(rosters...), nil
}

// TeamRoster extracts one team's roster, drops the index column and stamps each player
// with the team abbreviation
func (s *Scraper) TeamRoster(ctx context.Context, team Team) (*dataset.Collection, error) {
	c, err := s.extractor.Extract(ctx, s.site.RosterURL(team), table.Options{})
	if err != nil {
		return nil, fmt.Errorf("roster for %s: %w", team.Name, err)
	}

	if err := c.DropColumn(0); err != nil {
		return nil, fmt.Errorf("roster for %s: %w", team.Name, err)
	}
	if c.ColumnIndex("team") >= 0 {
		logger.Warn("Replacing team column from page", logger.Fields{"team": team.Name})
	}
	if err := c.Stamp("team", strings.ToUpper(team.Abbr)); err != nil {
		return nil, fmt.Errorf("roster for %s: %w", team.Name, err)
	}

	logger.Debug("Extracted roster", logger.Fields{
		"team":    team.Name,
		"players": c.Len(),
	})

	return c, nil
}
