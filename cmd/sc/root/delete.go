package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <city_id>",
		Short: "Delete a city and its buildings",
		Long: `Delete a city and every building in it.

Total coins and total study hours are kept: progress already earned is
never taken back. Deleting an unknown id is a no-op.`,
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

			if err := svc.DeleteCity(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				ui.Warn.Render("Deleted"), ui.Muted.Render(args[0]))
			return nil
		},
	}

	return cmd
}
