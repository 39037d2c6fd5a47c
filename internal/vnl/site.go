package vnl

import (
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://en.volleyballworld.com/en/vnl"
	DefaultSeason  = "2019"
	DefaultGender  = "women"
)

// Site identifies one VNL edition on volleyballworld.com
type Site struct {
	BaseURL string
	Season  string
	Gender  string
}

// DefaultSite returns the 2019 women's VNL
func DefaultSite() Site {
	return Site{
		BaseURL: DefaultBaseURL,
		Season:  DefaultSeason,
		Gender:  DefaultGender,
	}
}

func (s Site) root() string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + url.PathEscape(s.Season) + "/" + url.PathEscape(s.Gender)
}

// ResultsURL is the round-robin results and ranking page
func (s Site) ResultsURL() string {
	return s.root() + "/resultsandranking/round1"
}

// StatisticsURL is the best-players statistics page
func (s Site) StatisticsURL() string {
	return s.root() + "/statistics/"
}

// RosterURL is the team roster page for one team, e.g. .../teams/chn-china/team_roster
func (s Site) RosterURL(team Team) string {
	return s.root() + "/teams/" + url.PathEscape(team.Abbr+"-"+team.Name) + "/team_roster"
}
