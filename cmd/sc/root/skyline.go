package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/tui"
)

func newSkylineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skyline",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunSkyline(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
