package vnl

import (
	"fmt"
	"strings"
)

// Team is a participating nation and its three-letter abbreviation, both lower-case
type Team struct {
	Name string
	Abbr string
}

// Teams is an ordered, read-only team list with name lookup
type Teams struct {
	list   []Team
	byName map[string]string
}

// NewTeams builds a team list. Names are matched case-insensitively and must be unique.
func NewTeams(teams []Team) (Teams, error) {
	t := Teams{
		list:   make([]Team, 0, len(teams)),
		byName: make(map[string]string, len(teams)),
	}
	for _, team := range teams {
		name := strings.ToLower(strings.TrimSpace(team.Name))
		abbr := strings.ToLower(strings.TrimSpace(team.Abbr))
		if name == "" || abbr == "" {
			return Teams{}, fmt.Errorf("team %q: name and abbreviation are required", team.Name)
		}
		if _, dup := t.byName[name]; dup {
			return Teams{}, fmt.Errorf("duplicate team: %q", name)
		}
		t.byName[name] = abbr
		t.list = append(t.list, Team{Name: name, Abbr: abbr})
	}
	return t, nil
}

// DefaultTeams returns the sixteen teams of the 2019 women's VNL
func DefaultTeams() Teams {
	t, err := NewTeams([]Team{
		{"china", "chn"},
		{"belgium", "bel"},
		{"brazil", "bra"},
		{"bulgaria", "bul"},
		{"dominican republic", "dom"},
		{"germany", "ger"},
		{"italy", "ita"},
		{"japan", "jpn"},
		{"korea", "kor"},
		{"netherlands", "ned"},
		{"poland", "pol"},
		{"russia", "rus"},
		{"serbia", "srb"},
		{"thailand", "tha"},
		{"turkey", "tur"},
		{"usa", "usa"},
	})
	if err != nil {
		panic(err)
	}
	return t
}

// List returns a copy of the teams in their configured order
func (t Teams) List() []Team {
	out := make([]Team, len(t.list))
	copy(out, t.list)
	return out
}

// Len returns the number of teams
func (t Teams) Len() int {
	return len(t.list)
}

// Abbr returns the upper-case abbreviation for a full team name, matched case-insensitively
func (t Teams) Abbr(name string) (string, error) {
	abbr, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeam, name)
	}
	return strings.ToUpper(abbr), nil
}
