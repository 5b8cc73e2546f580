package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/wojakkk/studypal/internal/cli"
)

func newPracticeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "practice",
		Short: "Review due cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, repo, err := openDeck()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			session := cli.NewPracticeSession(d, repo, cli.NewTerminal(), today())
			return session.Run(ctx)
		},
	}
}
