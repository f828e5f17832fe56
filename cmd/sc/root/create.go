package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func newCreateCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new study city",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			city, err := svc.CreateCity(ctx, args[0], theme)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconCity+" Created"), city.Name, ui.Muted.Render("("+city.ID+")"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s Start studying: %s\n",
				ui.Muted.Render("💡"), ui.Key.Render(fmt.Sprintf("sc study %s --goal 25", city.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&theme, "theme", "t", "sunrise", "Display theme token (stored as-is)")

	return cmd
}
