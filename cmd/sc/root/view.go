package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/engine"
	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <city_id>",
		Short: "Show one city's buildings",
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

			city, ok := svc.City(args[0])
			if !ok {
				return engine.NotFoundError{Kind: "city", ID: args[0]}
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCity, city.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Theme", city.Theme))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Local coins", city.LocalCurrency))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			if len(city.Buildings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No buildings yet. Study to build the first one!"))
				return nil
			}
			for _, b := range city.Buildings {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.BuildingIcon(string(b.Type)), ui.Key.Render(string(b.Type)), ui.Muted.Render("("+b.ID+")"))
				fmt.Fprintf(cmd.OutOrStdout(), "   %dm of %dm goal, %s, height %.0f, %d rooms\n",
					b.SessionDuration, b.GoalDuration, ui.GoalText(b.Completed), b.Height, b.RoomsUnlocked)
				if len(b.Decorations) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "   decorations: %v\n", b.Decorations)
				}
			}
			return nil
		},
	}

	return cmd
}
