package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gostonefire/collisionbench/internal/bench"
	"github.com/gostonefire/collisionbench/internal/conf"
	"github.com/gostonefire/collisionbench/internal/logger"
	"github.com/gostonefire/collisionbench/internal/metric"
	"github.com/gostonefire/collisionbench/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	flags := conf.NewFlagSet("collisionbench")
	if err = flags.Parse(args); err != nil {
		return
	}

	config, err := conf.Load(flags)
	if err != nil {
		return
	}

	if err = logger.Init(config.LogLevel, os.Stderr); err != nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	writer, err := report.NewWriter(config.OutputPath, config.Compression)
	if err != nil {
		return
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var publisher metric.Publisher = metric.NoOp{}
	if config.MetricsEnabled {
		var statsD *metric.StatsD
		statsD, err = metric.NewStatsD(config.MetricsAddress)
		if err != nil {
			return
		}
		publisher = statsD
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("error while closing metrics publisher")
		}
	}()

	log.Info().
		Ints64("table_sizes", config.TableSizes).
		Ints64("record_counts", config.RecordCounts).
		Int("workers", config.Workers).
		Str("output", report.FileName(config.OutputPath, config.Compression)).
		Msg("starting benchmark")

	err = bench.NewRunner(config, writer, publisher).Run(ctx)
	if err != nil {
		err = fmt.Errorf("benchmark aborted: %w", err)
		return
	}

	log.Info().Msgf("results exported to %s", report.FileName(config.OutputPath, config.Compression))

	return
}
