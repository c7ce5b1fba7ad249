package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rainflow"
	"github.com/katalvlaran/rainflow/class"
	"github.com/katalvlaran/rainflow/cmd/rainflow/internal/log"
	"github.com/katalvlaran/rainflow/cmd/rainflow/internal/scenario"
	"github.com/katalvlaran/rainflow/damage"
	"github.com/katalvlaran/rainflow/report"
)

var (
	scenarioPath string
	outDir       string
)

var countCmd = &cobra.Command{
	Use:   "count",
	Args:  cobra.NoArgs,
	Short: "Run every stream in a scenario file through a counting engine",
	RunE:  runCount,
}

func init() {
	countCmd.Flags().StringVar(&scenarioPath, "scenario", "", "path to scenario YAML file")
	countCmd.Flags().StringVar(&outDir, "out", "", "directory to write per-stream CSV reports (stdout summary only if empty)")
	_ = countCmd.MarkFlagRequired("scenario")
}

func runCount(cmd *cobra.Command, args []string) error {
	logLevel := viper.GetString("log_level")
	if verbose {
		logLevel = "debug"
	}
	logger := log.New(os.Stderr, logLevel)

	sc, err := scenario.Load(scenarioPath)
	if err != nil {
		return err
	}

	p, err := class.NewParams(sc.Classes.N, sc.Classes.W, sc.Classes.O, sc.Classes.H)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}

	pol, err := sc.Policy()
	if err != nil {
		return err
	}

	opts := []rainflow.Option{}
	if sc.Wohler != nil {
		w, err := damage.NewWohler(sc.Wohler.SD, sc.Wohler.ND, sc.Wohler.K)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		opts = append(opts, rainflow.WithWohler(w))
	} else {
		opts = append(opts, rainflow.WithWohler(damage.Wohler{
			SD: viper.GetFloat64("wohler.sd"),
			ND: viper.GetFloat64("wohler.nd"),
			K:  viper.GetFloat64("wohler.k"),
		}))
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("count: %w", err)
		}
	}

	for _, stream := range sc.Streams {
		eng, err := rainflow.New(p, opts...)
		if err != nil {
			return fmt.Errorf("count: stream %s: %w", stream.Name, err)
		}

		logger.Info("feeding stream", "name", stream.Name, "samples", len(stream.Samples))
		if err := eng.Feed(stream.Samples); err != nil {
			return fmt.Errorf("count: stream %s: %w", stream.Name, err)
		}
		if err := eng.Finalize(pol); err != nil {
			return fmt.Errorf("count: stream %s: %w", stream.Name, err)
		}

		mat := eng.Matrix()
		logger.Info("stream finished",
			"name", stream.Name,
			"total_cycles", mat.TotalCycles(),
			"damage", eng.Damage(),
			"overflowed", mat.Overflowed(),
		)

		if outDir != "" {
			path := fmt.Sprintf("%s/%s.csv", outDir, stream.Name)
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("count: stream %s: %w", stream.Name, err)
			}
			runID, err := report.WriteMatrix(f, p, mat, eng.Damage(), eng.Residue())
			cerr := f.Close()
			if err != nil {
				return fmt.Errorf("count: stream %s: %w", stream.Name, err)
			}
			if cerr != nil {
				return fmt.Errorf("count: stream %s: %w", stream.Name, cerr)
			}
			logger.Info("wrote report", "name", stream.Name, "path", path, "run_id", runID)
		}
	}

	return nil
}
