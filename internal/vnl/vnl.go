package vnl

import (
	"context"
	"errors"

	"github.com/pfrederiksen/vnl-stats/internal/dataset"
	"github.com/pfrederiksen/vnl-stats/internal/table"
)

var (
	ErrUnknownTeam  = errors.New("unknown team")
	ErrBadSetScore  = errors.New("malformed set score")
	ErrShortRanking = errors.New("ranking table has too few columns")
)

// Extractor is the table extraction the datasets are built on
type Extractor interface {
	Extract(ctx context.Context, url string, opts table.Options) (*dataset.Collection, error)
}

// Scraper builds VNL datasets for one Site
type Scraper struct {
	extractor Extractor
	site      Site
	teams     Teams
}

// New creates a Scraper
func New(extractor Extractor, site Site, teams Teams) *Scraper {
	return &Scraper{
		extractor: extractor,
		site:      site,
		teams:     teams,
	}
}

// Site returns the VNL edition the scraper reads from
func (s *Scraper) Site() Site {
	return s.site
}
