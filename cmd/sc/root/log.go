package root

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var goalMinutes int
	var actualMinutes int

	cmd := &cobra.Command{
		Use:   "log <city_id>",
		Short: "Record a session studied without the timer",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("city_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteSession(ctx, args[0], actualMinutes, goalMinutes)
			if err != nil {
				return err
			}
			printCompletion(cmd, res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&goalMinutes, "goal", "g", 25, "Goal duration in minutes")
	cmd.Flags().IntVarP(&actualMinutes, "minutes", "m", 0, "Actual minutes studied")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}
