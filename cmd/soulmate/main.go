package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jpp0ca/MusicSoulmate/internal/adapters/localapi"
	"github.com/jpp0ca/MusicSoulmate/internal/adapters/matchapi"
	"github.com/jpp0ca/MusicSoulmate/internal/app"
	"github.com/jpp0ca/MusicSoulmate/internal/config"
	"github.com/jpp0ca/MusicSoulmate/internal/domain"
	"github.com/jpp0ca/MusicSoulmate/internal/logger"
	"github.com/jpp0ca/MusicSoulmate/internal/session"
	"github.com/jpp0ca/MusicSoulmate/internal/tui"
	"github.com/jpp0ca/MusicSoulmate/internal/view"
)

// errReported marks a failure that was already printed.
var errReported = errors.New("reported")

type matchesCmd struct {
	UserID  string   `arg:"positional,required" help:"user_id to find matches for (e.g. briana_test_002)"`
	Limit   string   `arg:"-n,--limit" help:"maximum number of matches [default: 10]"`
	Profile string   `arg:"-p,--profile" help:"also show the profile of this match"`
	Connect []string `arg:"-c,--connect,separate" help:"connect to this match after listing; repeatable"`
	JSON    bool     `arg:"--json" help:"print the raw response instead of the match list"`
}

type profileCmd struct {
	UserID string `arg:"positional,required" help:"user_id to look up"`
}

type connectCmd struct {
	From string `arg:"positional,required" help:"user_id connecting"`
	To   string `arg:"positional,required" help:"user_id to connect to"`
}

type tasteCmd struct {
	Sample bool `arg:"--sample" help:"post a fixed sample instead of your local listening data"`
}

type dashboardCmd struct{}

type tuiCmd struct{}

type args struct {
	Matches   *matchesCmd   `arg:"subcommand:matches" help:"list matches for a user"`
	Profile   *profileCmd   `arg:"subcommand:profile" help:"show a user's profile"`
	Connect   *connectCmd   `arg:"subcommand:connect" help:"connect one user to another"`
	Taste     *tasteCmd     `arg:"subcommand:taste" help:"build a taste profile on the match service"`
	Dashboard *dashboardCmd `arg:"subcommand:dashboard" help:"show your local listening dashboard"`
	TUI       *tuiCmd       `arg:"subcommand:tui" help:"interactive match finder"`

	MatchAPI string `arg:"--match-api" help:"match service base URL (overrides MATCH_API_BASE_URL)"`
	LocalAPI string `arg:"--local-api" help:"local backend base URL (overrides LOCAL_API_BASE_URL)"`
	Verbose  bool   `arg:"-v,--verbose" help:"log requests at debug level"`
}

func (args) Description() string {
	return "soulmate finds listeners with a similar music taste.\n"
}

func main() {
	var a args
	p := arg.MustParse(&a)
	if p.Subcommand() == nil {
		p.WriteHelp(os.Stdout)
		os.Exit(2)
	}

	cfg := config.Load()
	if a.MatchAPI != "" {
		cfg.MatchAPIBaseURL = a.MatchAPI
	}
	if a.LocalAPI != "" {
		cfg.LocalAPIBaseURL = a.LocalAPI
	}
	level := cfg.LogLevel
	if a.Verbose {
		level = "debug"
	}

	if a.TUI != nil {
		os.Exit(runTUI(cfg, level))
	}

	logger.Init(level, cfg.Environment, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	matches := matchapi.NewClient(cfg.MatchAPIBaseURL, nil)
	local := localapi.NewClient(cfg.LocalAPIBaseURL, nil)
	out := newPrinter(os.Stdout)

	var err error
	switch {
	case a.Matches != nil:
		err = runMatches(ctx, out, app.NewFinder(matches, nil), a.Matches)
	case a.Profile != nil:
		err = runProfile(ctx, out, app.NewFinder(matches, nil), a.Profile.UserID)
	case a.Connect != nil:
		err = runConnect(ctx, out, matches, a.Connect)
	case a.Taste != nil:
		err = runTaste(ctx, out, matches, local, a.Taste.Sample)
	case a.Dashboard != nil:
		out.dashboard(app.LoadDashboard(ctx, local))
	}

	if err != nil {
		if !errors.Is(err, errReported) {
			out.status(view.ProjectStatus(err))
		}
		os.Exit(1)
	}
}

func runMatches(ctx context.Context, out *printer, finder *app.Finder, cmd *matchesCmd) error {
	if err := finder.Search(ctx, cmd.UserID, cmd.Limit); err != nil {
		return err
	}

	if cmd.JSON {
		out.body(finder.Store().Snapshot().List.Body)
		return nil
	}
	out.screen(finder.Screen())

	for _, to := range cmd.Connect {
		ack, err := finder.Connect(ctx, to)
		if err != nil {
			return err
		}
		out.connected(ack)
	}
	if len(cmd.Connect) > 0 {
		out.matchList(finder.Screen().List)
	}

	if cmd.Profile != "" {
		if err := finder.SelectMatch(ctx, cmd.Profile); err != nil {
			return err
		}
		out.profile(finder.Screen().Profile)
	}

	return nil
}

func runProfile(ctx context.Context, out *printer, finder *app.Finder, userID string) error {
	err := finder.SelectMatch(ctx, userID)
	if panel := finder.Screen().Profile; panel.Visible && err == nil {
		out.profile(panel)
	}
	return err
}

// runConnect connects outside of any search, so the connected set starts
// empty and every call reaches the service.
func runConnect(ctx context.Context, out *printer, api *matchapi.Client, cmd *connectCmd) error {
	ack, err := api.Connect(ctx, cmd.From, cmd.To, session.ConnectedSet{})
	if err != nil {
		return err
	}
	out.connected(ack)
	return nil
}

func runTaste(ctx context.Context, out *printer, api *matchapi.Client, local *localapi.Client, sample bool) error {
	items := app.SampleTasteItems()
	if !sample {
		var err error
		if items, err = localTasteItems(ctx, local); err != nil {
			return fmt.Errorf("failed to read local listening data: %w", err)
		}
	}

	result, err := api.PostTasteProfile(ctx, items)
	out.section(view.ProjectRemoteTasteProfile(result, err))
	if err != nil {
		return errReported
	}
	return nil
}

func localTasteItems(ctx context.Context, local *localapi.Client) (domain.TasteItems, error) {
	profile, err := local.Me(ctx)
	if err != nil {
		return domain.TasteItems{}, err
	}
	artists, err := local.TopArtists(ctx)
	if err != nil {
		return domain.TasteItems{}, err
	}
	tracks, err := local.TopTracks(ctx)
	if err != nil {
		return domain.TasteItems{}, err
	}
	return app.TasteItemsFromListening(profile, artists, tracks), nil
}

// runTUI keeps logs off the terminal bubbletea draws on: they go to
// SOULMATE_LOG_FILE when set, and nowhere otherwise.
func runTUI(cfg *config.Config, level string) int {
	var w io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close() //nolint:errcheck
		w = f
	}
	logger.Init(level, cfg.Environment, w)

	finder := app.NewFinder(matchapi.NewClient(cfg.MatchAPIBaseURL, nil), nil)
	program := tea.NewProgram(tui.NewApp(finder), tea.WithAltScreen())

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Printf("error running soulmate: %v\n", err)
		return 1
	}
	return 0
}
