package bench

import (
	"context"
	"fmt"

	"github.com/gostonefire/collisionbench/internal/conf"
	"github.com/gostonefire/collisionbench/internal/dataset"
	"github.com/gostonefire/collisionbench/internal/metric"
	"github.com/gostonefire/collisionbench/internal/model"
	"github.com/gostonefire/collisionbench/internal/report"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// RowWriter - Receives the report rows in configuration order
type RowWriter interface {
	Write(row report.Row) error
}

// Runner - Sweeps the matrix of table sizes and record counts
type Runner struct {
	config    conf.Config
	writer    RowWriter
	publisher metric.Publisher
	runs      []Run
}

// NewRunner - Returns a pointer to a new Runner
//   - config is a validated configuration
//   - writer receives one row per run and matrix cell
//   - publisher is optional, nil means no metrics
func NewRunner(config conf.Config, writer RowWriter, publisher metric.Publisher) *Runner {
	if publisher == nil {
		publisher = metric.NoOp{}
	}

	return &Runner{
		config:    config,
		writer:    writer,
		publisher: publisher,
		runs:      Runs(config.Strategies, config.Hashes),
	}
}

// Run - Executes the whole sweep. All matrix cells draw their records from one random stream seeded
// with the configured seed, so a sweep is reproducible as a whole.
// Cancelling ctx stops the sweep before the next run starts.
func (R *Runner) Run(ctx context.Context) (err error) {
	generator := dataset.NewGenerator(R.config.Seed, R.config.CodeMin, R.config.CodeSpan)

	for _, tableSize := range R.config.TableSizes {
		for _, nRecords := range R.config.RecordCounts {
			if err = ctx.Err(); err != nil {
				return
			}

			capacity := R.config.Capacity(tableSize, nRecords)
			log.Info().
				Int64("table_size", tableSize).
				Int64("capacity", capacity).
				Int64("records", nRecords).
				Msg("running matrix cell")

			records := generator.Records(nRecords)

			err = R.runCell(ctx, capacity, records)
			if err != nil {
				return
			}
		}
	}

	log.Info().Msg("benchmark sweep completed")

	return
}

// runCell - Executes all runs for one matrix cell, at most config.Workers at a time, and emits their rows
// in run order
func (R *Runner) runCell(ctx context.Context, capacity int64, records []model.Record) (err error) {
	rows := make([]report.Row, len(R.runs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(R.config.Workers)

	for i, run := range R.runs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			row, err := Measure(run, capacity, records)
			if err != nil {
				return err
			}
			rows[i] = row

			log.Debug().
				Str("family", row.Family).
				Str("variant", row.Variant).
				Int64("insert_ms", row.InsertMillis).
				Int64("search_ms", row.SearchMillis).
				Uint64("collisions", row.Collisions).
				Int64("found", row.Found).
				Msg("run completed")

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return
	}

	for _, row := range rows {
		if err = R.writer.Write(row); err != nil {
			err = fmt.Errorf("error while writing row for %s/%s: %w", row.Family, row.Variant, err)
			return
		}
		R.publisher.Publish(row)
	}

	return
}
