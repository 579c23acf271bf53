package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/db"
	"github.com/startupwire/startupwire/pkg/domain"
	"github.com/startupwire/startupwire/pkg/email"
	"github.com/startupwire/startupwire/pkg/feed"
	"github.com/startupwire/startupwire/pkg/lexicon"
	"github.com/startupwire/startupwire/pkg/render"
	"github.com/startupwire/startupwire/pkg/service"
	"github.com/startupwire/startupwire/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"startupwire.yml" description:"configuration file"`
	Output string `short:"o" long:"output" env:"OUTPUT" description:"export selected stories to JSON file"`
	Daemon bool   `short:"d" long:"daemon" description:"run the digest on the configured interval with the API server"`
	DryRun bool   `long:"dry-run" description:"curate without persisting, rendering or sending"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config %s: %w", opts.Config, err)
	}

	setupLog(opts.Debug, opts.NoColor, cfg.Email.Password)
	log.Printf("[INFO] starting startupwire version %s", revision)

	lex, err := lexicon.Load(cfg.Curation.LexiconFile)
	if err != nil {
		return fmt.Errorf("load lexicon: %w", err)
	}

	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer database.Close()

	if err := database.InitSchema(ctx); err != nil {
		return fmt.Errorf("init database schema: %w", err)
	}

	collect := cfg.GetCollectConfig()
	fetcher := feed.NewFetcher(collect.Timeout, collect.UserAgent)
	collector := feed.NewCollector(fetcher, collect)

	params := service.Params{
		Collector:     collector,
		Store:         database,
		Lexicon:       lex,
		Curation:      cfg.GetCurationConfig(),
		Interval:      cfg.Digest.Interval,
		ExportFile:    opts.Output,
		RetentionDays: cfg.Digest.RetentionDays,
	}

	if cfg.Slides.Enabled && !opts.DryRun {
		renderer, err := render.New(cfg.GetSlidesConfig())
		if err != nil {
			return fmt.Errorf("create slide renderer: %w", err)
		}
		params.Renderer = renderer
	}
	if cfg.Email.Enabled && !opts.DryRun {
		params.Mailer = email.NewSender(cfg.GetEmailConfig())
	}
	if opts.DryRun {
		params.Store = dryRunStore{Store: database}
	}

	digest := service.NewDigest(params)

	if !opts.Daemon {
		report, err := digest.Run(ctx)
		if err != nil {
			return fmt.Errorf("digest run: %w", err)
		}
		log.Printf("[INFO] digest done, %d articles, mean relevance %.2f", report.Total, report.MeanRelevance)
		return nil
	}

	digest.Start(ctx)
	defer digest.Stop()

	srv := server.New(cfg, database, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// dryRunStore reads history but drops all writes
type dryRunStore struct {
	service.Store
}

func (d dryRunStore) AddSeenURLs(ctx context.Context, urls []string) error { return nil }

func (d dryRunStore) DeleteOldSeenURLs(ctx context.Context, days int) (int64, error) { return 0, nil }

func (d dryRunStore) SaveBatch(ctx context.Context, articles []domain.Article, report domain.Report) (int64, error) {
	return 0, nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	secrets := make([]string, 0, len(secs))
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
