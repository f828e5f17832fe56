package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your study cities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cities := svc.Cities()
			if len(cities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No cities yet. Try: sc create \"Math\""))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCity, "Study Cities"))
			for _, c := range cities {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s — %d buildings, %s %d local\n",
					ui.Key.Render(c.Name),
					ui.Muted.Render("("+c.ID+")"),
					ui.Dim.Render("theme="+c.Theme),
					len(c.Buildings),
					ui.IconCoin, c.LocalCurrency)
			}
			return nil
		},
	}

	return cmd
}
