package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/nanobench/internal/bench/config"
	"github.com/wesleyorama2/nanobench/internal/bench/engine"
	"github.com/wesleyorama2/nanobench/internal/bench/report"
	"github.com/wesleyorama2/nanobench/internal/bench/sampler"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark a snippet and print its latency statistics",
		Long: `Run N timed trials of a snippet and report statistics over the trimmed sample.

Config file mode:
  nanobench run --config bench.yaml

Quick CLI mode:
  nanobench run --snippet digits-log --trials 1000000 --cpu 3

Flags given on the command line override values from the config file.`,
		Args: cobra.NoArgs,
		RunE: runBench,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to a YAML or JSON benchmark config")
	flags.IntP("trials", "n", config.DefaultTrials, "Number of timed trials")
	flags.Float64("head", config.DefaultHead, "Fraction of largest samples to drop")
	flags.Float64("tail", config.DefaultTail, "Fraction of smallest samples to drop")
	flags.Bool("no-trim", false, "Keep every sample")
	flags.Bool("multicore", false, "Spread trials over several goroutines (not a reliable benchmark)")
	flags.Int("workers", 0, "Goroutines for --multicore (0 = GOMAXPROCS)")
	flags.StringP("snippet", "s", config.DefaultSnippet, "Snippet to benchmark (see 'nanobench snippets')")
	flags.Int("cpu", sampler.NoCPU, "Pin the sampling thread to this core (-1 = no pinning)")
	flags.Bool("baseline", false, "Also time the empty snippet and report the net mean")
	flags.Bool("histogram", false, "Add an HDR histogram percentile section")
	flags.Bool("json", false, "Write the result as JSON")
	flags.String("extract", "", "Print a single field of the JSON result (e.g. report.median)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

func runBench(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved",
		"trials", cfg.Trials,
		"snippet", cfg.Snippet,
		"head", cfg.HeadFraction(),
		"tail", cfg.TailFraction(),
		"multicore", cfg.Multicore,
		"cpu", cfg.PinnedCPU())

	eng, err := engine.New(cfg, logger)
	if err != nil {
		return err
	}

	result, err := eng.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if extract, _ := cmd.Flags().GetString("extract"); extract != "" {
		return report.WriteField(out, result, extract)
	}
	if cfg.Output == config.OutputJSON {
		return report.WriteJSON(out, result)
	}
	return report.NewTextWriter(out, cfg.NoColor).Write(result)
}

// resolveConfig layers changed flags over the config file (if any).
func resolveConfig(cmd *cobra.Command) (*config.BenchConfig, error) {
	flags := cmd.Flags()

	cfg := &config.BenchConfig{}
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("trials") {
		cfg.Trials, _ = flags.GetInt("trials")
		if cfg.Trials < 1 {
			// zero would otherwise be replaced by the default
			errs := &config.ValidationErrors{}
			errs.Add("trials", fmt.Sprintf("must be at least 1, got %d", cfg.Trials))
			return nil, errs
		}
	}
	if flags.Changed("head") {
		head, _ := flags.GetFloat64("head")
		cfg.Head = &head
		cfg.CutHead = boolPtr(true)
	}
	if flags.Changed("tail") {
		tail, _ := flags.GetFloat64("tail")
		cfg.Tail = &tail
		cfg.CutTail = boolPtr(true)
	}
	if noTrim, _ := flags.GetBool("no-trim"); noTrim {
		cfg.CutHead = boolPtr(false)
		cfg.CutTail = boolPtr(false)
	}
	if flags.Changed("multicore") {
		cfg.Multicore, _ = flags.GetBool("multicore")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("snippet") {
		cfg.Snippet, _ = flags.GetString("snippet")
	}
	if flags.Changed("cpu") {
		cpu, _ := flags.GetInt("cpu")
		cfg.CPU = &cpu
	}
	if flags.Changed("baseline") {
		cfg.Baseline, _ = flags.GetBool("baseline")
	}
	if flags.Changed("histogram") {
		cfg.Histogram, _ = flags.GetBool("histogram")
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Output = config.OutputJSON
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		cfg.NoColor = true
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func boolPtr(b bool) *bool { return &b }
