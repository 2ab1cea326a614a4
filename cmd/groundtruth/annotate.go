package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/groundtruth/config"
	"github.com/spacesedan/groundtruth/internal/annotator"
	"github.com/spacesedan/groundtruth/internal/logging"
	"github.com/spacesedan/groundtruth/internal/sentiment"
	"github.com/spf13/cobra"
)

func NewAnnotateCommand() *cobra.Command {
	var configFilePath string

	cmd := &cobra.Command{
		Use:   "annotate [ground-truth files...]",
		Short: "Write <name>_vader.tsv polarity scores for each ground-truth file",
		Long: "Reads id<TAB>label<TAB>text lines from each input and writes " +
			"id, neg, neu, pos, compound and the cleaned text to a sibling TSV file. " +
			"Inputs given as arguments replace the configured list.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFilePath, cmd.Flags())
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Inputs = args
			}
			if err := setupLogging(cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			scorer := sentiment.NewVaderScorer(sentiment.WithMarkdownCleanup(cfg.Markdown))
			a, err := annotator.New(cfg.AnnotatorConfig(), scorer)
			if err != nil {
				return err
			}

			results, err := a.Run(ctx)
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "Created output for %s as %s\n", res.Input, res.Output)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "", "config file (yaml, json or toml)")
	cmd.Flags().StringP("output-dir", "o", ".", "directory for derived output files")
	cmd.Flags().String("suffix", annotator.DEFAULT_SUFFIX, "suffix appended to the input file stem")
	cmd.Flags().String("extension", annotator.DEFAULT_EXTENSION, "output file extension")
	cmd.Flags().String("output", "", "fixed output path, only with a single input")
	cmd.Flags().String("ascii", string(sentiment.ASCIINone), "non-ASCII handling before scoring: none, unidecode or fold")
	cmd.Flags().Bool("markdown", false, "strip markdown and links before scoring")
	cmd.Flags().Bool("continue-on-error", false, "keep processing remaining files after a failure")
	cmd.Flags().String("log-level", "info", "debug, info, warn or error")
	return cmd
}

func setupLogging(cfg *config.Config) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("[Config] invalid config: %w", errors.Join(errs...))
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.InitLogger(level)
	return nil
}
