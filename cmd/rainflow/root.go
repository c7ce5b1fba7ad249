package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "rainflow",
	Short:   "Rainflow cycle-counting test runner",
	Long:    `rainflow drives a fatigue cycle-counting engine across YAML-defined sample scenarios and writes CSV damage reports.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./rainflow.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(serveCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rainflow")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetDefault("wohler.sd", 1e3)
	viper.SetDefault("wohler.nd", 1e6)
	viper.SetDefault("wohler.k", 5.0)
	viper.SetDefault("log_level", "info")
	viper.SetEnvPrefix("RAINFLOW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "rainflow: config: %v\n", err)
		}
	}
}
