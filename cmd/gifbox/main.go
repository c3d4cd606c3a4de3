// ABOUTME: CLI entrypoint for the gifbox terminal client with an optional in-process demo backend.
// ABOUTME: Layers flags over config, opens the session store, and runs the Bubble Tea program.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/2389-research/gifbox/config"
	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/rpc"
	"github.com/2389-research/gifbox/rpc/rpctest"
	"github.com/2389-research/gifbox/session"
	"github.com/2389-research/gifbox/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

// options holds CLI flags. set records which flags were given explicitly so
// they override config without clobbering it with flag defaults.
type options struct {
	configPath  string
	apiURL      string
	dataDir     string
	session     string
	startPath   string
	timeout     time.Duration
	logFile     string
	demo        bool
	showVersion bool
	set         map[string]bool
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("gifbox %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(opts))
}

// parseFlags parses args into options. Usage and parse errors go to stderr.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{set: map[string]bool{}}

	fs := flag.NewFlagSet("gifbox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/gifbox/config.yaml)")
	fs.StringVar(&opts.apiURL, "api", config.DefaultAPIURL, "API root URL")
	fs.StringVar(&opts.dataDir, "data-dir", "", "Directory for the session database")
	fs.StringVar(&opts.session, "session", config.DefaultSessionBackend, "Session backend: sqlite, bolt, memory")
	fs.StringVar(&opts.startPath, "start", config.DefaultStartPath, "Location to open at startup")
	fs.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "Per-request timeout")
	fs.StringVar(&opts.logFile, "log-file", "", "Log file (default: <data-dir>/gifbox.log)")
	fs.BoolVar(&opts.demo, "demo", false, "Run against an in-process demo backend")
	fs.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// resolveConfig loads config and overlays any explicitly set flags.
func resolveConfig(opts options, lookup func(string) (string, bool)) (config.Config, error) {
	return config.Load(opts.configPath, lookup, func(cfg *config.Config) {
		if opts.set["api"] {
			cfg.APIURL = opts.apiURL
		}
		if opts.set["data-dir"] {
			cfg.DataDir = opts.dataDir
		}
		if opts.set["session"] {
			cfg.SessionBackend = opts.session
		} else if opts.demo {
			// demo accounts do not outlive the process
			cfg.SessionBackend = session.BackendMemory
		}
		if opts.set["start"] {
			cfg.StartPath = opts.startPath
		}
		if opts.set["timeout"] {
			cfg.RequestTimeout = opts.timeout
		}
		if opts.set["log-file"] {
			cfg.LogFile = opts.logFile
		}
	})
}

// run wires the client together and blocks until the program exits.
// Returns an exit code: 0 for success, 1 for failure.
func run(opts options) int {
	cfg, err := resolveConfig(opts, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o700); err != nil {
			fmt.Fprintf(os.Stderr, "error: create log dir: %v\n", err)
			return 1
		}
		f, err := tea.LogToFile(cfg.LogFile, "gifbox")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		defer f.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if opts.demo {
		url, shutdown, err := startDemoBackend()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: start demo backend: %v\n", err)
			return 1
		}
		defer shutdown()
		cfg.APIURL = url
	}

	client, err := rpc.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	log.Printf("gifbox start version=%s api=%s session=%s demo=%t",
		version, client.BaseURL(), cfg.SessionBackend, opts.demo)

	store, err := session.Open(cfg.SessionBackend, cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer store.Close()

	model := tui.NewAppModel(ctx, core.NewExecutor(client, store), store, cfg.StartPath)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// startDemoBackend serves the fake API on a loopback port and returns its
// API root and a shutdown func.
func startDemoBackend() (string, func(), error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	srv := &http.Server{
		Handler:           rpctest.New().Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "demo backend: %v\n", err)
		}
	}()

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return "http://" + ln.Addr().String() + "/api", shutdown, nil
}
