package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rainflow"
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/cmd/rainflow/internal/log"
	"github.com/katalvlaran/rainflow/cmd/rainflow/internal/metrics"
	"github.com/katalvlaran/rainflow/cmd/rainflow/internal/scenario"
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/matrix"
)

var (
	serveAddr string
)

const shutdownTimeout = 5 * time.Second

// fillRatio reports the fraction of m's N*N cells that hold at least
// one cycle.
func fillRatio(m *matrix.Matrix) float64 {
	n := m.N()
	if n == 0 {
		return 0
	}
	var filled uint32
	for from := uint32(0); from < n; from++ {
		for to := uint32(0); to < n; to++ {
			if c, err := m.Cycles(from, to); err == nil && c > 0 {
				filled++
			}
		}
	}
	return float64(filled) / float64(n*n)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Args:  cobra.NoArgs,
	Short: "Run a scenario once and keep its counters exposed over Prometheus until interrupted",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to scenario YAML file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9090", "address to serve /metrics on")
	_ = serveCmd.MarkFlagRequired("scenario")
}

func runServe(cmd *cobra.Command, args []string) error {
	logLevel := viper.GetString("log_level")
	if verbose {
		logLevel = "debug"
	}
	logger := log.New(os.Stderr, logLevel)
	m := metrics.New()

	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}
	p, err := class.NewParams(sc.Classes.N, sc.Classes.W, sc.Classes.O, sc.Classes.H)
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	pol, err := sc.Policy()
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: serveAddr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", "addr", serveAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	for _, stream := range sc.Streams {
		eng, err := rainflow.New(p, rainflow.WithWohler(damage.Wohler{
			SD: viper.GetFloat64("wohler.sd"),
			ND: viper.GetFloat64("wohler.nd"),
			K:  viper.GetFloat64("wohler.k"),
		}))
		if err != nil {
			return fmt.Errorf("serve: stream %s: %w", stream.Name, err)
		}

		for _, v := range stream.Samples {
			if err := eng.Feed([]float64{v}); err != nil {
				logger.Error("feed failed", "stream", stream.Name, "err", err)
				break
			}
			m.SamplesFed.Inc()
		}
		if err := eng.Finalize(pol); err != nil {
			logger.Error("finalize failed", "stream", stream.Name, "err", err)
			continue
		}

		mat := eng.Matrix()
		m.CyclesClosed.Add(mat.TotalCycles())
		m.MatrixFill.Set(fillRatio(mat))
		if mat.Overflowed() {
			m.Overflowed.Set(1)
		} else {
			m.Overflowed.Set(0)
		}
		logger.Info("stream finished", "name", stream.Name, "total_cycles", mat.TotalCycles())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-sigCh:
		logger.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
