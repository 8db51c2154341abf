package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hupe1980/geoplace"
	"github.com/hupe1980/geoplace/codec"
	"github.com/hupe1980/geoplace/dataset"
	"github.com/hupe1980/geoplace/model"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
)

// app carries the configuration and observability wiring of one invocation.
type app struct {
	cfg config

	logger         *geoplace.Logger
	metrics        geoplace.MetricsCollector
	tracerProvider trace.TracerProvider
	closers        []func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "geoplace",
		Short: "Find population-optimal locations among region centroids",
		Long: `geoplace chooses the k county centroids that minimise the aggregate
population-weighted distance from every county to its nearest chosen location,
or tallies population by nearest anchor county.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyEnv(cmd.Flags()); err != nil {
				return err
			}
			return a.cfg.validate()
		},
	}

	a.cfg.bindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newFindCmd(a), newTallyCmd(a))
	return cmd
}

// run sets up observability, loads the dataset and calls fn with a Placer.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, p *geoplace.Placer, regions []model.Region) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	if err := a.setup(ctx, cmd.ErrOrStderr()); err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.close())
	}()

	regions, err := a.load(ctx)
	if err != nil {
		return err
	}
	if a.cfg.output == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "Got %d regions\n", len(regions))
	}

	opts := append(a.cfg.placerOptions(),
		geoplace.WithLogger(a.logger),
		geoplace.WithMetricsCollector(a.metrics),
		geoplace.WithTracerProvider(a.tracerProvider),
	)
	if err := fn(ctx, geoplace.New(opts...), regions); err != nil {
		return err
	}

	if a.cfg.output == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "took %.3f secs\n", time.Since(start).Seconds())
	}
	return nil
}

func (a *app) setup(ctx context.Context, stderr io.Writer) error {
	level, _ := a.cfg.level()
	opts := &slog.HandlerOptions{Level: level}
	if a.cfg.logFormat == "json" {
		a.logger = geoplace.NewLogger(slog.NewJSONHandler(stderr, opts))
	} else {
		a.logger = geoplace.NewLogger(slog.NewTextHandler(stderr, opts))
	}

	a.metrics = geoplace.NoopMetricsCollector{}

	if err := a.initTracing(ctx, stderr); err != nil {
		return err
	}
	return a.initMetrics(ctx)
}

func (a *app) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *app) load(ctx context.Context) ([]model.Region, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.Load(ctx, store, a.cfg.data, a.cfg.datasetOptions(a.logger)...)
}

func (a *app) writeJSON(w io.Writer, v any) error {
	cd, _ := codec.ByName(a.cfg.codec)
	b, err := cd.MarshalIndent(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
