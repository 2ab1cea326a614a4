package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacesedan/groundtruth/config"
	"github.com/spacesedan/groundtruth/internal/logging"
	"github.com/spacesedan/groundtruth/internal/sentiment"
	"github.com/spacesedan/groundtruth/internal/verify"
	"github.com/spf13/cobra"
)

func NewVerifyCommand() *cobra.Command {
	var configFilePath string

	cmd := &cobra.Command{
		Use:   "verify <annotated tsv files...>",
		Short: "Re-score annotated TSV files and report scores that drift from the stored ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFilePath, cmd.Flags())
			if err != nil {
				return err
			}
			if errs := cfg.ValidateCommon(); len(errs) > 0 {
				return fmt.Errorf("[Config] invalid config: %w", errors.Join(errs...))
			}
			level, _ := logging.ParseLevel(cfg.LogLevel)
			logging.InitLogger(level)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			v := verify.NewVerifier(sentiment.NewVaderScorer(), cfg.MaxReported)
			reports, err := v.VerifyFiles(ctx, args)
			if err != nil {
				return err
			}

			mismatches := 0
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d mismatches\n", r.Path, r.Records, len(r.Mismatches))
				mismatches += len(r.Mismatches)
			}
			if mismatches > 0 {
				return fmt.Errorf("%d scores differ from ground truth", mismatches)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFilePath, "config", "c", "", "config file (yaml, json or toml)")
	cmd.Flags().Int("max-reported", verify.DEFAULT_MAX_REPORTED, "mismatches logged in detail per file")
	cmd.Flags().String("log-level", "info", "debug, info, warn or error")
	return cmd
}
