package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/mwhitcomb/babble/pkg/markov"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "babble",
		Short:   "Markov chain word generator over a fixed-capacity hash table",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	var (
		configPath string
		source     string
		tableSize  int
		order      int
		words      int
		seed       uint64
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Build a model from a source text and print generated words",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(configPath, source, tableSize, order, words, seed)
		},
	}
	runCmd.Flags().StringVar(&configPath, "config", "./babble.json", "path to the config file (created with defaults if missing)")
	runCmd.Flags().StringVar(&source, "source", "", "path to the source text")
	runCmd.Flags().IntVar(&tableSize, "table-size", 20011, "slot count for the prefix table")
	runCmd.Flags().IntVar(&order, "prefix", 2, "prefix size in words")
	runCmd.Flags().IntVar(&words, "words", 100, "number of words to generate")
	runCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 picks one at random")
	_ = runCmd.MarkFlagRequired("source")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath, source string, tableSize, order, words int, seed uint64) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(config.LogLevel)

	if order < 1 {
		return errors.New("specified prefix size is less than one")
	}
	if words < 1 {
		return errors.New("specified size of the generated text is less than one")
	}

	file, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source text: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	tokens, err := markov.ReadTokens(file, markov.NewWordTokenizer())
	if err != nil {
		return fmt.Errorf("failed to tokenize source text: %w", err)
	}

	var opts []markov.ModelOption
	if seed != 0 {
		opts = append(opts, markov.WithRand(rand.New(rand.NewPCG(seed, 0))))
	}
	model, err := markov.NewModel(order, tableSize, opts...)
	if err != nil {
		return err
	}
	model.SetLogger(logger)

	if err := model.Build(tokens); err != nil {
		if errors.Is(err, markov.ErrTableFull) {
			return fmt.Errorf("table too small for input (%d slots): %w", tableSize, err)
		}
		return err
	}

	generated := model.Generate(words)
	if len(generated) > 0 {
		fmt.Println(wrapWords(generated, config.WordsPerLine))
	}

	stats := model.Stats()
	logger.Info("Generation complete",
		"source", source,
		"prefixes", stats.Prefixes,
		"transitions", stats.Transitions,
		"load_factor", stats.LoadFactor,
		"words_requested", words,
		"words_emitted", len(generated),
	)

	if config.RunLogPath != "" {
		if err := logRun(config.RunLogPath, RunRecord{
			RanAt:          time.Now(),
			Source:         source,
			TableSize:      tableSize,
			Order:          order,
			WordsRequested: words,
			WordsEmitted:   len(generated),
		}); err != nil {
			// The run itself succeeded; a broken run log is not fatal.
			logger.Error("Failed to record run", "path", config.RunLogPath, "error", err)
		}
	}

	return nil
}

func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
