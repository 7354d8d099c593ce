// Command wlxstat logs in to a Yamaha WLX402/WLX312 access point, scrapes the
// system status page and prints CPU usage, memory usage, temperature and
// per-radio client counts.
//
//	wlxstat [-t wlx402|wlx312] [-f login.yaml] [-format json|prometheus] ADDR
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/obsidianstack/wlxstat/internal/config"
	"github.com/obsidianstack/wlxstat/internal/device"
	"github.com/obsidianstack/wlxstat/internal/output"
	"github.com/obsidianstack/wlxstat/internal/scraper"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wlxstat", flag.ContinueOnError)
	fs.SetOutput(stderr)
	model := fs.String("t", string(device.WLX402), "device type: "+strings.Join(device.Models(), "|"))
	credsPath := fs.String("f", config.DefaultPath, "path to credentials file (USER/PASS)")
	envPath := fs.String("env", ".env", "optional .env file with WLX_USER/WLX_PASS")
	format := fs.String("format", string(output.FormatJSON), "output format: json|prometheus")
	logLevel := fs.String("log-level", "warn", "log level: debug|info|warn|error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: wlxstat [flags] ADDR\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	addr := fs.Arg(0)

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "wlxstat: invalid log level %q\n", *logLevel)
		return exitUsage
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Reject bad input before touching the filesystem or the network.
	if _, err := device.Lookup(*model); err != nil {
		fmt.Fprintf(stderr, "wlxstat: %v\n", err)
		return exitUsage
	}
	outFormat, err := output.ParseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "wlxstat: %v\n", err)
		return exitUsage
	}

	if err := config.LoadDotEnv(*envPath); err != nil {
		slog.Error("failed to load env file", "path", *envPath, "err", err)
		return exitError
	}
	creds, err := config.Load(*credsPath)
	if err != nil {
		slog.Error("failed to load credentials", "err", err)
		return exitError
	}
	slog.Info("wlxstat starting", "addr", addr, "model", *model, "creds", *creds)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	res, err := scraper.New(*creds).Scrape(ctx, addr, *model)
	if err != nil {
		slog.Error("scrape failed", "addr", addr, "err", err)
		if errors.Is(err, scraper.ErrUnauthorized) {
			fmt.Fprintf(stderr, "wlxstat: %s rejected the credentials from %s\n", addr, *credsPath)
		}
		return exitError
	}

	if err := output.Write(stdout, res, outFormat); err != nil {
		slog.Error("failed to write output", "err", err)
		return exitError
	}
	return exitOK
}
