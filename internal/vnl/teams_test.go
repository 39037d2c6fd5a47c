package vnl

import (
	"errors"
	"testing"
)

func TestDefaultTeams(t *testing.T) {
	teams := DefaultTeams()

	if teams.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", teams.Len())
	}

	list := teams.List()
	if list[0] != (Team{"china", "chn"}) {
		t.Errorf("first team = %+v, want china/chn", list[0])
	}
	if list[15] != (Team{"usa", "usa"}) {
		t.Errorf("last team = %+v, want usa/usa", list[15])
	}

	// List returns a copy
	list[0].Abbr = "xxx"
	if got, _ := teams.Abbr("china"); got != "CHN" {
		t.Errorf("Abbr(china) = %q after modifying List(), want CHN", got)
	}
}

func TestTeams_Abbr(t *testing.T) {
	teams := DefaultTeams()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"China", "CHN", false},
		{"Dominican Republic", "DOM", false},
		{"  USA ", "USA", false},
		{"netherlands", "NED", false},
		{"Atlantis", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := teams.Abbr(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTeam) {
					t.Errorf("Abbr(%q) error = %v, want ErrUnknownTeam", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Abbr(%q) unexpected error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Abbr(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewTeams_Errors(t *testing.T) {
	tests := []struct {
		name  string
		teams []Team
	}{
		{"duplicate name", []Team{{"china", "chn"}, {"China", "chi"}}},
		{"missing abbreviation", []Team{{"china", ""}}},
		{"missing name", []Team{{" ", "chn"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTeams(tt.teams); err == nil {
				t.Error("NewTeams() expected error, got nil")
			}
		})
	}
}

func TestNewTeams_Normalizes(t *testing.T) {
	teams, err := NewTeams([]Team{{" Japan ", "JPN"}})
	if err != nil {
		t.Fatalf("NewTeams() error: %v", err)
	}
	if got := teams.List()[0]; got != (Team{"japan", "jpn"}) {
		t.Errorf("List()[0] = %+v, want japan/jpn", got)
	}
}
