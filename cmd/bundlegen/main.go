package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"bundlegen/internal/adapters/discord"
	"bundlegen/internal/application"
	"bundlegen/internal/catalog"
	"bundlegen/internal/config"
	"bundlegen/internal/domain"
	"bundlegen/internal/infrastructure/database"
	"bundlegen/internal/infrastructure/encoding"
	"bundlegen/internal/infrastructure/filesystem"
	"bundlegen/internal/infrastructure/i18n"
	"bundlegen/internal/ports/output"
)

// app bundles the wired use case with what the commands print through.
type app struct {
	exports    *application.ExportService
	translator output.T
	locale     string
	close      func()
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "bundlegen",
		Usage:  "Export the Japanese and English UI string bundles as JSON files",
		Action: exportCmd.Action,
		Commands: []*cli.Command{
			exportCmd,
			checkCmd,
			listCmd,
			historyCmd,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

// setup loads the configuration and wires ports: output adapters -> application.
func setup(ctx context.Context, console io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	encoders, err := encoding.Default().Resolve(cfg.Formats)
	if err != nil {
		return nil, err
	}

	translator := i18n.NewTranslator(cfg.ConsoleLocale)
	closeFn := func() {}

	var runs output.RunRepository = database.NopRunRepository{}
	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("ledger database: %w", err)
		}
		closeFn = pool.Close
		runs = database.NewRunRepository(pool)
	}

	var notifier output.Notifier = discord.NopNotifier{}
	if cfg.DiscordWebhookURL != "" {
		n, err := discord.NewNotifier(cfg.DiscordWebhookURL, translator, cfg.ConsoleLocale)
		if err != nil {
			closeFn()
			return nil, err
		}
		notifier = n
	}

	exports := application.NewExportService(
		catalog.Sets(),
		encoders,
		filesystem.NewSink(),
		runs,
		notifier,
		translator,
		application.ExportSettings{
			Dir:     cfg.ExportDir,
			Locale:  cfg.ConsoleLocale,
			Console: console,
		},
	)

	return &app{
		exports:    exports,
		translator: translator,
		locale:     cfg.ConsoleLocale,
		close:      closeFn,
	}, nil
}

// withApp runs fn against a wired app and localizes domain errors.
func withApp(cctx *cli.Context, fn func(a *app) error) error {
	a, err := setup(cctx.Context, cctx.App.Writer)
	if err != nil {
		return err
	}
	defer a.close()

	if err := fn(a); err != nil {
		if code := domain.Code(err); code != "" {
			return fmt.Errorf("%s (%w)", a.translator.T(a.locale, "error."+code, nil), err)
		}
		return err
	}
	return nil
}

// errCheckFailed is returned by check when error-level issues were found.
var errCheckFailed = errors.New("check failed")
