package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tuiter-app/tuiter/infra/api"
	"github.com/tuiter-app/tuiter/infra/auth"
	"github.com/tuiter-app/tuiter/infra/config"
	"github.com/tuiter-app/tuiter/infra/editor"
	"github.com/tuiter-app/tuiter/infra/logging"
	"github.com/tuiter-app/tuiter/infra/metrics"
	"github.com/tuiter-app/tuiter/infra/store"
	"github.com/tuiter-app/tuiter/tui"
	"github.com/tuiter-app/tuiter/tui/login"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliLogin
	cliRegister
	cliLogout
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	case "login":
		return cliLogin, ""
	case "register":
		return cliRegister, ""
	case "logout":
		return cliLogout, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: tuiter [login|register|logout] [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func fail(format string, args ...any) {
	logging.Error.Printf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("tuiter %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logging goes to a file; the TUI owns the terminal.
	logFile, err := logging.Init(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		logging.InitWriter(io.Discard)
	} else {
		defer logFile.Close()
	}
	if cfg.MetricsAddr != "" {
		metrics.StartServer(cfg.MetricsAddr)
	}

	// 3. Session.
	session, err := auth.OpenSession(cfg.SessionPath)
	if err != nil {
		fail("session: %v", err)
	}
	if mode == cliLogout {
		if err := session.End(); err != nil {
			fail("logout: %v", err)
		}
		fmt.Println("Signed out.")
		return
	}

	// 4. Build infrastructure.
	opts := []api.Option{
		api.WithApplicationToken(cfg.ApplicationToken),
		api.WithTimeout(cfg.RequestTimeout),
		api.WithRateLimit(cfg.RateLimit),
	}
	client := api.NewClient(cfg.APIURL, session, opts...)

	if mode == cliLogin || mode == cliRegister || !session.Valid(time.Now()) {
		formMode := login.ModeLogin
		if mode == cliRegister {
			formMode = login.ModeRegister
		}
		// A stale token must not ride along on /login or /users.
		loginSvc := api.NewAccountService(api.NewClient(cfg.APIURL, auth.Anonymous{}, opts...))
		final, err := tea.NewProgram(login.New(loginSvc, formMode, session.Email())).Run()
		if err != nil {
			fail("tuiter: %v", err)
		}
		form, ok := final.(login.Model)
		if !ok || form.Token() == "" {
			if mode == cliRun {
				fmt.Fprintln(os.Stderr, "Not signed in.")
				os.Exit(1)
			}
			return
		}
		if err := session.Start(form.Token(), form.Email()); err != nil {
			fail("saving session: %v", err)
		}
		logging.Info.Printf("signed in as %s", form.Email())
		if mode != cliRun {
			fmt.Printf("Signed in as %s.\n", form.Email())
			return
		}
	}

	db, err := store.Open(cfg.StorePath)
	if err != nil {
		fail("store: %v", err)
	}
	defer db.Close()

	// 5. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Feed:      api.NewFeedService(client),
		Posts:     api.NewPostService(client),
		Account:   api.NewAccountService(client),
		Drafts:    db,
		Favorites: db,
		Editor:    editor.NewEnvEditor(),
		UserEmail: session.Email(),
	})

	// 6. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tuiter: %v\n", err)
		os.Exit(1)
	}
}
