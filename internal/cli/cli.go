package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pfrederiksen/vnl-stats/internal/config"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
	"github.com/pfrederiksen/vnl-stats/internal/scraper"
	"github.com/pfrederiksen/vnl-stats/internal/storage"
	"github.com/pfrederiksen/vnl-stats/internal/table"
	"github.com/pfrederiksen/vnl-stats/internal/vnl"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// Dataset file names
const (
	RosterFile  = "player_bio"
	RankingFile = "team_rank"
	MatchesFile = "round_robin"
)

// app carries the settings and collaborators shared by all commands
type app struct {
	cfg     config.Config
	preview bool
	verbose bool

	out     io.Writer
	logOut  io.Writer
	teams   vnl.Teams
	fetcher table.Fetcher // nil builds one from cfg
}

// NewRootCmd creates the root command with settings from cfg
func NewRootCmd(cfg config.Config) *cobra.Command {
	return newRootCmd(&app{
		cfg:    cfg,
		out:    os.Stdout,
		logOut: os.Stderr,
		teams:  vnl.DefaultTeams(),
	})
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vnl-stats",
		Short: "Scrape Volleyball Nations League statistics into tabular files",
		Long: `A CLI tool to scrape Volleyball Nations League statistics tables from
volleyballworld.com. Without a subcommand it writes every dataset: player rosters,
team ranking, best-player leaderboards and the round-robin match summary.`,
		PersistentPreRunE: a.setup,
		RunE:              a.runAll,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	cmd.SetOut(a.out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfg.OutDir, "out-dir", a.cfg.OutDir, "Directory the dataset files are written to")
	flags.StringVar(&a.cfg.Format, "format", a.cfg.Format, "Output format: csv or xlsx")
	flags.StringVar(&a.cfg.BaseURL, "base-url", a.cfg.BaseURL, "VNL site root")
	flags.StringVar(&a.cfg.Season, "season", a.cfg.Season, "VNL season")
	flags.StringVar(&a.cfg.Gender, "gender", a.cfg.Gender, "VNL competition: women or men")
	flags.BoolVar(&a.cfg.Render, "render", a.cfg.Render, "Render pages in a headless browser before extracting")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "Per-page request timeout (0 means none)")
	flags.BoolVar(&a.preview, "preview", false, "Print datasets as tables instead of writing files")
	flags.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(
		a.datasetCmd("all", "Scrape every dataset", a.runAll),
		a.datasetCmd("roster", "Scrape the player roster of every team", a.runRoster),
		a.datasetCmd("ranking", "Scrape the round-robin team ranking", a.runRanking),
		a.datasetCmd("leaders", "Scrape the seven best-player leaderboards", a.runLeaders),
		a.datasetCmd("matches", "Scrape the round-robin match summary", a.runMatches),
		a.tableCmd(),
	)

	return cmd
}

func (a *app) datasetCmd(use, short string, run func(*cobra.Command, []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

// setup configures logging before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, a.logOut))

	if _, err := storage.ParseFormat(a.cfg.Format); err != nil {
		return err
	}
	return nil
}

// session holds the collaborators for a single command run
type session struct {
	extractor *table.Extractor
	scraper   *vnl.Scraper
	sink      Sink
	close     func() error
}

func (a *app) open() (*session, error) {
	fetcher := a.fetcher
	closeFn := func() error { return nil }

	if fetcher == nil {
		if a.cfg.Render {
			b, err := scraper.NewBrowser(a.cfg.Timeout)
			if err != nil {
				return nil, fmt.Errorf("starting browser: %w", err)
			}
			fetcher = b
			closeFn = b.Close
		} else {
			fetcher = scraper.NewWithOptions(a.cfg.UserAgent, a.cfg.Timeout)
		}
	}

	var sink Sink
	if a.preview {
		sink = NewPreviewSink(a.out)
	} else {
		format, err := storage.ParseFormat(a.cfg.Format)
		if err != nil {
			closeFn()
			return nil, err
		}
		store, err := storage.New(a.cfg.OutDir, format)
		if err != nil {
			closeFn()
			return nil, fmt.Errorf("initializing storage: %w", err)
		}
		sink = NewFileSink(store, a.out)
	}

	extractor := table.NewExtractor(fetcher)
	return &session{
		extractor: extractor,
		scraper:   vnl.New(extractor, a.cfg.Site(), a.teams),
		sink:      sink,
		close:     closeFn,
	}, nil
}

// run opens a session, runs fn and logs the run metrics
func (a *app) run(cmd *cobra.Command, name string, fn func(ctx context.Context, s *session) error) error {
	start := time.Now()

	s, err := a.open()
	if err != nil {
		return err
	}
	defer s.close()

	logger.Debug("Run started", logger.Fields{
		"command": name,
		"site":    a.cfg.Site().ResultsURL(),
	})

	if err := fn(cmd.Context(), s); err != nil {
		logger.Error("Run failed", logger.Fields{"command": name}, err)
		return err
	}

	logger.RecordTiming("run", time.Since(start))
	logger.LogSummary("Run finished")
	return nil
}

func (a *app) runAll(cmd *cobra.Command, args []string) error {
	return a.run(cmd, "all", func(ctx context.Context, s *session) error {
		roster, err := s.scraper.Roster(ctx)
		if err != nil {
			return err
		}
		ranking, err := s.scraper.TeamRanking(ctx)
		if err != nil {
			return err
		}
		if err := s.sink.Save(RosterFile, roster); err != nil {
			return err
		}
		if err := s.sink.Save(RankingFile, ranking); err != nil {
			return err
		}

		if err := saveLeaders(ctx, s); err != nil {
			return err
		}

		return saveMatches(ctx, s)
	})
}

func (a *app) runRoster(cmd *cobra.Command, args []string) error {
	return a.run(cmd, "roster", func(ctx context.Context, s *session) error {
		roster, err := s.scraper.Roster(ctx)
		if err != nil {
			return err
		}
		return s.sink.Save(RosterFile, roster)
	})
}

func (a *app) runRanking(cmd *cobra.Command, args []string) error {
	return a.run(cmd, "ranking", func(ctx context.Context, s *session) error {
		ranking, err := s.scraper.TeamRanking(ctx)
		if err != nil {
			return err
		}
		return s.sink.Save(RankingFile, ranking)
	})
}

func (a *app) runLeaders(cmd *cobra.Command, args []string) error {
	return a.run(cmd, "leaders", saveLeaders)
}

func (a *app) runMatches(cmd *cobra.Command, args []string) error {
	return a.run(cmd, "matches", saveMatches)
}

// saveLeaders writes each leaderboard as soon as it is extracted
func saveLeaders(ctx context.Context, s *session) error {
	for i, category := range vnl.Categories {
		board, err := s.scraper.Leaderboard(ctx, i)
		if err != nil {
			return err
		}
		if err := s.sink.Save(category, board); err != nil {
			return err
		}
	}
	return nil
}

func saveMatches(ctx context.Context, s *session) error {
	matches, err := s.scraper.MatchSummary(ctx)
	if err != nil {
		return err
	}
	return s.sink.Save(MatchesFile, matches)
}

// Execute runs the CLI
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
