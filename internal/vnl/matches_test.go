package vnl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pfrederiksen/vnl-stats/internal/dataset"
)

const resultsPage = `
<html>
<body>
	<table class="ranking"><thead><tr><th>Pos</th></tr></thead><tbody></tbody></table>
	<table class="matches">
		<thead><tr><th>Match</th><th>Date</th><th>Teams</th></tr></thead>
		<tbody>
			<tr>
				<td>1</td>
				<td>21 May 2019</td>
				<td><span>ITA</span><span>CHN</span></td>
				<td><span>3</span><span>1</span></td>
				<td><span>25</span><span>-</span><span>20</span></td>
				<td><span>9</span><span>25</span></td>
				<td><span>26</span><span>24</span></td>
				<td><span>25</span><span>7</span></td>
				<td>-</td>
				<td><span>85</span><span>76</span></td>
				<td>1:48</td>
				<td>3500</td>
			</tr>
			<tr><th colspan="12">Week 2</th></tr>
			<tr>
				<td>2</td>
				<td>22 May 2019</td>
				<td><span>USA</span><span>BRA</span></td>
				<td><span>3</span><span>0</span></td>
				<td><span>25</span><span>18</span></td>
				<td><span>25</span><span>21</span></td>
				<td><span>25</span><span>23</span></td>
				<td>-</td>
				<td>-</td>
				<td><span>75</span><span>62</span></td>
				<td>1:21</td>
				<td>2100</td>
			</tr>
		</tbody>
	</table>
</body>
</html>
`

func TestMatchSummary(t *testing.T) {
	s, _ := newTestScraper(t, map[string]string{testSite().ResultsURL(): resultsPage}, DefaultTeams())

	got, err := s.MatchSummary(context.Background())
	if err != nil {
		t.Fatalf("MatchSummary() error: %v", err)
	}

	want := &dataset.Collection{
		Columns: MatchColumns,
		Rows: []dataset.Record{
			{
				"number": "1", "date": "21 May 2019", "teams": "ITA-CHN", "sets": "3-1",
				"set1_point": "25-20", "set2_point": "9-25", "set3_point": "26-24",
				"set4_point": "25-7", "set5_point": "-",
				"pionts": "85-76", "time": "1:48", "audience": "3500",
			},
			{
				"number": "2", "date": "22 May 2019", "teams": "USA-BRA", "sets": "3-0",
				"set1_point": "25-18", "set2_point": "25-21", "set3_point": "25-23",
				"set4_point": "-", "set5_point": "-",
				"pionts": "75-62", "time": "1:21", "audience": "2100",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MatchSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchSummary_BadSetScore(t *testing.T) {
	page := `
		<table></table>
		<table><tbody><tr>
			<td>1</td><td>d</td><td>t</td><td>s</td>
			<td><span>125</span><span>20</span></td>
		</tr></tbody></table>
	`
	s, _ := newTestScraper(t, map[string]string{testSite().ResultsURL(): page}, DefaultTeams())

	_, err := s.MatchSummary(context.Background())
	if !errors.Is(err, ErrBadSetScore) {
		t.Errorf("MatchSummary() error = %v, want ErrBadSetScore", err)
	}
}

func TestFormatSetPoints(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"25-20", "25-20", false},
		{"25---20", "25-20", false},
		{"9-25", "9-25", false},
		{"15-9", "15-9", false},
		{"0-25", "0-25", false},
		{"32-30", "32-30", false},
		{"25 : 20", "25-20", false},
		{"-", "-", false},
		{"", "", false},
		{"125-20", "", true},
		{"25-100", "", true},
		{"-5-20", "", true},
		{"25", "", true},
		{"ab-cd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatSetPoints(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadSetScore) {
					t.Errorf("FormatSetPoints(%q) error = %v, want ErrBadSetScore", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatSetPoints(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("FormatSetPoints(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
