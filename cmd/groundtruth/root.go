package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "groundtruth",
		Short: "Score ground-truth corpora with VADER and check them against other ports",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewAnnotateCommand())
	rootCmd.AddCommand(NewVerifyCommand())

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		slog.Info("Use the 'annotate' or 'verify' subcommand")
		_ = cmd.Help()
	}
	return rootCmd
}
