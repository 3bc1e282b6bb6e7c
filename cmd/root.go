// Package cmd implements the faredash command line.
package cmd

import (
	"fmt"
	"os"

	"faredash/config"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "faredash",
	Short: "Public sentiment dashboard for distance-based fares",
	Long: `faredash generates a sample of public comments about Rwanda's
distance-based fare system, classifies each comment as Positive, Neutral or
Negative and serves a dashboard with the distribution, the daily trend, word
clouds and recommendations derived from them.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
