package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pfrederiksen/vnl-stats/internal/config"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
	"github.com/pfrederiksen/vnl-stats/internal/vnl"
)

type pageFetcher struct {
	pages map[string]string
	calls []string
}

func (f *pageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	page, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("unexpected status code: 404 (%s)", url)
	}
	return []byte(page), nil
}

const resultsPage = `
<html><body>
<table>
	<thead>
		<tr><th colspan="3">Team</th><th colspan="9">Results</th></tr>
		<tr>
			<th>Total</th><th>Won</th><th>Lost</th>
			<th>Won</th><th>Lost</th><th>Ratio</th>
			<th>Won</th><th>Lost</th><th>Ratio</th>
		</tr>
	</thead>
	<tbody>
		<tr><td>1</td><td>Italy</td><td></td><td>15</td><td>13</td><td>2</td><td>41</td><td>13</td><td>3.153</td><td>1250</td><td>1010</td><td>1.237</td></tr>
		<tr><td>2</td><td>China</td><td></td><td>15</td><td>12</td><td>3</td><td>38</td><td>15</td><td>2.533</td><td>1200</td><td>1050</td><td>1.142</td></tr>
	</tbody>
</table>
<table>
	<tbody>
		<tr>
			<td>1</td><td>21 May 2019</td><td><span>ITA</span><span>CHN</span></td><td><span>3</span><span>0</span></td>
			<td><span>25</span><span>20</span></td><td><span>25</span><span>18</span></td><td><span>25</span><span>9</span></td>
			<td>-</td><td>-</td><td><span>75</span><span>47</span></td><td>1:20</td><td>3500</td>
		</tr>
	</tbody>
</table>
</body></html>
`

const rosterPage = `
<table>
	<thead><tr><th>#</th><th>No.</th><th>Player Name</th></tr></thead>
	<tbody><tr><td>1</td><td>%d</td><td>%s</td></tr></tbody>
</table>
`

func statisticsPage() string {
	var b strings.Builder
	for _, category := range vnl.Categories {
		fmt.Fprintf(&b, `<table id=%q>
			<thead><tr><th>Player Name</th><th>Total</th></tr></thead>
			<tbody>
				<tr><td>Egonu</td><td>200</td></tr>
				<tr><td>Zhu</td><td>150</td></tr>
				<tr><td colspan="2">Load more</td></tr>
			</tbody>
		</table>`, category)
	}
	return b.String()
}

func testPages(site vnl.Site) map[string]string {
	return map[string]string{
		site.ResultsURL():    resultsPage,
		site.StatisticsURL(): statisticsPage(),
		site.RosterURL(vnl.Team{Name: "china", Abbr: "chn"}): fmt.Sprintf(rosterPage, 2, "Zhu Ting"),
		site.RosterURL(vnl.Team{Name: "italy", Abbr: "ita"}): fmt.Sprintf(rosterPage, 18, "Paola Egonu"),
	}
}

func newTestApp(t *testing.T, pages map[string]string) (*app, *bytes.Buffer) {
	t.Helper()

	teams, err := vnl.NewTeams([]vnl.Team{{Name: "china", Abbr: "chn"}, {Name: "italy", Abbr: "ita"}})
	if err != nil {
		t.Fatalf("NewTeams() error: %v", err)
	}

	cfg := config.Default()
	cfg.BaseURL = "https://vnl.test/en/vnl"
	cfg.OutDir = t.TempDir()

	if pages == nil {
		pages = testPages(cfg.Site())
	}

	var out bytes.Buffer
	return &app{
		cfg:     cfg,
		out:     &out,
		logOut:  &bytes.Buffer{},
		teams:   teams,
		fetcher: &pageFetcher{pages: pages},
	}, &out
}

func execute(a *app, args ...string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestRunAll_WritesEveryDataset(t *testing.T) {
	a, out := newTestApp(t, nil)

	if err := execute(a); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	want := []string{RosterFile, RankingFile}
	want = append(want, vnl.Categories...)
	want = append(want, MatchesFile)

	for _, name := range want {
		path := filepath.Join(a.cfg.OutDir, name+".csv")
		if _, err := os.Stat(path); err != nil {
			t.Errorf("dataset %s not written: %v", name, err)
		}
		if !strings.Contains(out.String(), path+" saved.") {
			t.Errorf("output does not report %s", path)
		}
	}

	gauges := logger.GetMetricsSnapshot()["gauges"].(map[string]float64)
	if gauges["rows."+RosterFile] != 2 {
		t.Errorf("rows.%s gauge = %v, want 2", RosterFile, gauges["rows."+RosterFile])
	}

	roster := readFile(t, filepath.Join(a.cfg.OutDir, RosterFile+".csv"))
	wantRoster := "no.,player_name,team\n2,Zhu Ting,CHN\n18,Paola Egonu,ITA\n"
	if diff := cmp.Diff(wantRoster, roster); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}

	ranking := readFile(t, filepath.Join(a.cfg.OutDir, RankingFile+".csv"))
	if !strings.HasPrefix(ranking, "rank,team_full,match_total,match_win,match_lose,set_won,set_lost,set_ratio,point_won,point_lost,point_ratio,team\n") {
		t.Errorf("ranking header = %q", strings.SplitN(ranking, "\n", 2)[0])
	}
	if !strings.Contains(ranking, "2,China,15,12,3,38,15,2.533,1200,1050,1.142,CHN\n") {
		t.Errorf("ranking missing China row:\n%s", ranking)
	}

	scorers := readFile(t, filepath.Join(a.cfg.OutDir, "best-scorers.csv"))
	if diff := cmp.Diff("player_name,total,rank\nEgonu,200,1\nZhu,150,2\n", scorers); diff != "" {
		t.Errorf("best-scorers mismatch (-want +got):\n%s", diff)
	}

	matches := readFile(t, filepath.Join(a.cfg.OutDir, MatchesFile+".csv"))
	wantMatches := "number,date,teams,sets,set1_point,set2_point,set3_point,set4_point,set5_point,pionts,time,audience\n" +
		"1,21 May 2019,ITA-CHN,3-0,25-20,25-18,25-9,-,-,75-47,1:20,3500\n"
	if diff := cmp.Diff(wantMatches, matches); diff != "" {
		t.Errorf("round_robin mismatch (-want +got):\n%s", diff)
	}
}

func TestRunAll_FailureAbortsBeforeSaving(t *testing.T) {
	a, _ := newTestApp(t, nil)
	site := a.cfg.Site()
	pages := testPages(site)
	delete(pages, site.ResultsURL())
	a.fetcher = &pageFetcher{pages: pages}

	if err := execute(a, "all"); err == nil {
		t.Fatal("Execute() expected error, got nil")
	}

	entries, err := os.ReadDir(a.cfg.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("wrote %d files before failing, want 0", len(entries))
	}
}

func TestSubcommands(t *testing.T) {
	tests := []struct {
		command string
		files   []string
	}{
		{"roster", []string{RosterFile}},
		{"ranking", []string{RankingFile}},
		{"leaders", vnl.Categories},
		{"matches", []string{MatchesFile}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			a, _ := newTestApp(t, nil)

			if err := execute(a, tt.command); err != nil {
				t.Fatalf("Execute(%s) error: %v", tt.command, err)
			}

			entries, err := os.ReadDir(a.cfg.OutDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != len(tt.files) {
				t.Errorf("wrote %d files, want %d", len(entries), len(tt.files))
			}
			for _, name := range tt.files {
				if _, err := os.Stat(filepath.Join(a.cfg.OutDir, name+".csv")); err != nil {
					t.Errorf("dataset %s not written: %v", name, err)
				}
			}
		})
	}
}

func TestFormatXLSX(t *testing.T) {
	a, _ := newTestApp(t, nil)

	if err := execute(a, "ranking", "--format", "xlsx"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(a.cfg.OutDir, RankingFile+".xlsx")); err != nil {
		t.Errorf("xlsx not written: %v", err)
	}
}

func TestInvalidFormat(t *testing.T) {
	a, _ := newTestApp(t, nil)

	err := execute(a, "ranking", "--format", "json")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Execute() error = %v, want invalid format", err)
	}
}

func TestPreview(t *testing.T) {
	a, out := newTestApp(t, nil)

	if err := execute(a, "matches", "--preview"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if !strings.Contains(out.String(), "round_robin (1 rows)") {
		t.Errorf("preview missing title:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "25-20") {
		t.Errorf("preview missing set score:\n%s", out.String())
	}

	entries, _ := os.ReadDir(a.cfg.OutDir)
	if len(entries) != 0 {
		t.Errorf("preview wrote %d files, want 0", len(entries))
	}
}

func TestTableCommand(t *testing.T) {
	a, _ := newTestApp(t, nil)
	url := a.cfg.Site().StatisticsURL()

	err := execute(a, "table", "--url", url, "--index", "2", "--name", "blockers", "--sort", "total", "--numeric")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	got := readFile(t, filepath.Join(a.cfg.OutDir, "blockers.csv"))
	want := "player_name,total\nZhu,150\nEgonu,200\nLoad more,\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table output mismatch (-want +got):\n%s", diff)
	}
}

func TestTableCommand_OverrideColumns(t *testing.T) {
	a, _ := newTestApp(t, nil)
	url := a.cfg.Site().ResultsURL()

	err := execute(a, "table", "--url", url, "--index", "0", "--header-row", "1", "--blank-columns", "3", "--name", "standings", "--preview")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	err = execute(a, "table", "--url", url, "--index", "1", "--columns", "a,b", "--name", "short")
	if err == nil {
		t.Error("Execute() with too few override columns expected error, got nil")
	}
}

func TestTableCommand_RequiresURL(t *testing.T) {
	a, _ := newTestApp(t, nil)

	if err := execute(a, "table"); err == nil {
		t.Error("Execute() without --url expected error, got nil")
	}
}

func TestVerboseLogsDebug(t *testing.T) {
	a, _ := newTestApp(t, nil)
	var logs bytes.Buffer
	a.logOut = &logs

	if err := execute(a, "matches", "--verbose"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(logs.String(), `"level":"DEBUG"`) {
		t.Errorf("verbose run wrote no debug entries:\n%s", logs.String())
	}
	if !strings.Contains(logs.String(), "Run finished") {
		t.Errorf("run summary not logged:\n%s", logs.String())
	}
}
