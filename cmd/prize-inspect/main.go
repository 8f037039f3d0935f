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
	"github.com/louisbranch/andaria/internal/tools/prizeinspect"
)

func main() {
	cfg, err := prizeinspect.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError(platformcmd.ServicePrizeInspect, err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServicePrizeInspect, func(ctx context.Context) error {
		return prizeinspect.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		stop()
		userMessage := i18n.LocalizeError(i18n.Printer(cfg.Locale), err)
		os.Exit(platformcmd.ReportError(os.Stderr, platformcmd.ServicePrizeInspect, i18n.Tag(cfg.Locale).String(), userMessage, err))
	}
}
