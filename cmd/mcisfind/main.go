// Package main provides the mcisfind CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// .env is optional; absence is the common case outside test harnesses.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcisfind",
	Short: "Discover common dataflow structure across compute DAGs",
	Long: `mcisfind builds workload dataflow CDAGs (matrix-vector multiplication,
FFT, Haar wavelet transform) and searches for their Maximum Common Induced
Subgraph.

Workload specs:
  mvm:MxN     matrix-vector multiply of an MxN matrix
  fft:N       radix-2 FFT over N points (N a power of two)
  dwt:N,D[,K] Haar DWT of N samples, D levels, K blocks (default 1)

Example:
  mcisfind run mvm:2x2 fft:4 --algo bron-kerbosch --diagrams`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
