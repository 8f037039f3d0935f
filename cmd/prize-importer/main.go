package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/andaria/internal/platform/cmd"
	"github.com/louisbranch/andaria/internal/platform/config"
	"github.com/louisbranch/andaria/internal/services/game/i18n"
	prizeimporter "github.com/louisbranch/andaria/internal/tools/importer/prizes"
)

func main() {
	cfg, err := prizeimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError(platformcmd.ServicePrizeImporter, err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServicePrizeImporter, func(ctx context.Context) error {
		return prizeimporter.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		stop()
		userMessage := i18n.LocalizeError(i18n.Printer(cfg.Locale), err)
		os.Exit(platformcmd.ReportError(os.Stderr, platformcmd.ServicePrizeImporter, i18n.Tag(cfg.Locale).String(), userMessage, err))
	}
}
