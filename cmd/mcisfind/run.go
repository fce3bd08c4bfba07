package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcislab/mcis/builder"
	"github.com/mcislab/mcis/core"
	"github.com/mcislab/mcis/mcis"
	"github.com/mcislab/mcis/viz"
)

var (
	runAlgos      []string
	runTag        string
	runConfigPath string
	runBudget     int
	runTimeoutMS  int
	runCutoff     int
	runDiagrams   bool
)

func init() {
	runCmd.Flags().StringSliceVar(&runAlgos, "algo", []string{"bron-kerbosch"},
		"algorithms to run: bron-kerbosch, kpt")
	runCmd.Flags().StringVar(&runTag, "tag", "", "restrict the search to nodes with this tag")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "YAML config file")
	runCmd.Flags().IntVar(&runBudget, "node-budget", 0, "product-graph node budget (overrides config)")
	runCmd.Flags().IntVar(&runTimeoutMS, "timeout-ms", 0, "search timeout in milliseconds (overrides config)")
	runCmd.Flags().IntVar(&runCutoff, "size-cutoff", 0, "clique size cutoff (overrides config)")
	runCmd.Flags().BoolVar(&runDiagrams, "diagrams", false, "write DOT diagrams of inputs and results")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <workload> <workload> [workload...]",
	Short: "Build workload graphs and search for their MCIS",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runConfigPath)
	if err != nil {
		return err
	}
	// Flags override file values.
	if runBudget > 0 {
		cfg.NodeBudget = runBudget
	}
	if runTimeoutMS > 0 {
		cfg.TimeoutMS = runTimeoutMS
	}
	if runCutoff > 0 {
		cfg.SizeCutoff = runCutoff
	}

	// MCIS_GENERATE_DIAGRAMS=1 mirrors the test-harness toggle.
	diagrams := runDiagrams || os.Getenv("MCIS_GENERATE_DIAGRAMS") == "1"

	graphs := make([]*core.Graph, 0, len(args))
	for i, spec := range args {
		g, buildErr := buildWorkload(spec)
		if buildErr != nil {
			return buildErr
		}
		slog.Info("built workload", "spec", spec, "nodes", g.NodeCount(), "edges", g.EdgeCount())
		if diagrams {
			if path, dErr := viz.SaveDiagram(cfg.DiagramDir, fmt.Sprintf("input_%d", i), g); dErr == nil {
				slog.Info("wrote diagram", "path", path)
			} else {
				slog.Warn("diagram failed", "err", dErr)
			}
		}
		graphs = append(graphs, g)
	}

	algos, err := parseAlgorithms(runAlgos)
	if err != nil {
		return err
	}

	opts := []mcis.Option{
		mcis.WithNodeBudget(cfg.NodeBudget),
		mcis.WithTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond),
		mcis.WithSizeCutoff(cfg.SizeCutoff),
	}
	if runTag != "" {
		opts = append(opts, mcis.WithTag(runTag))
	}

	started := time.Now()
	results, err := mcis.RunMany(graphs, algos, opts...)
	if err != nil {
		return err
	}
	slog.Info("search finished", "elapsed", time.Since(started))

	for i, algo := range algos {
		fmt.Printf("%s: %d result(s)\n", algo, len(results[i]))
		for j, g := range results[i] {
			fmt.Printf("  result %d: %d node(s), %d edge(s)\n", j, g.NodeCount(), g.EdgeCount())
			for _, id := range g.NodeIDs() {
				fmt.Printf("    %s\n", id)
			}
			if diagrams {
				name := fmt.Sprintf("%s_result_%d", algo, j)
				if path, dErr := viz.SaveDiagram(cfg.DiagramDir, name, g); dErr == nil {
					slog.Info("wrote diagram", "path", path)
				}
			}
		}
	}

	return nil
}

// parseAlgorithms maps CLI names to selectors.
func parseAlgorithms(names []string) ([]mcis.Algorithm, error) {
	algos := make([]mcis.Algorithm, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(name) {
		case "bron-kerbosch", "bron-kerbosch-serial", "bk":
			algos = append(algos, mcis.BronKerboschSerial)
		case "kpt":
			algos = append(algos, mcis.KPT)
		default:
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
	}

	return algos, nil
}

// buildWorkload parses one workload spec and invokes the matching factory.
func buildWorkload(spec string) (*core.Graph, error) {
	kind, params, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, fmt.Errorf("workload %q: want kind:params", spec)
	}

	switch strings.ToLower(kind) {
	case "mvm":
		dims := strings.SplitN(strings.ToLower(params), "x", 2)
		if len(dims) != 2 {
			return nil, fmt.Errorf("workload %q: want mvm:MxN", spec)
		}
		m, err := strconv.Atoi(dims[0])
		if err != nil {
			return nil, fmt.Errorf("workload %q: %w", spec, err)
		}
		n, err := strconv.Atoi(dims[1])
		if err != nil {
			return nil, fmt.Errorf("workload %q: %w", spec, err)
		}
		return builder.MVMFromDimensions(m, n)

	case "fft":
		n, err := strconv.Atoi(params)
		if err != nil {
			return nil, fmt.Errorf("workload %q: %w", spec, err)
		}
		return builder.FFT(n)

	case "dwt":
		fields := strings.Split(params, ",")
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("workload %q: want dwt:N,D[,K]", spec)
		}
		nums := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("workload %q: %w", spec, err)
			}
			nums[i] = v
		}
		k := 1
		if len(nums) == 3 {
			k = nums[2]
		}
		gs, err := builder.HaarDWT(nums[0], nums[1], k, builder.PrunedAverage)
		if err != nil {
			return nil, err
		}
		return gs[0], nil

	default:
		return nil, fmt.Errorf("workload %q: unknown kind %q", spec, kind)
	}
}
