package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show totals and ribbon milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cities := svc.Cities()
			buildings := 0
			for _, c := range cities {
				buildings += len(c.Buildings)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Study City Status"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", fmt.Sprintf("%s %d", ui.IconCoin, svc.TotalCurrency())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Studied", fmt.Sprintf("%s %.1fh", ui.IconTimer, svc.TotalStudyHours())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Cities", len(cities)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Buildings", buildings))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconRibbon+" Ribbons"))
			for _, r := range svc.Ribbons() {
				state := ui.Muted.Render(fmt.Sprintf("locked (%gh)", r.HoursRequired))
				if r.Earned {
					state = ui.Good.Render("earned")
				}
				line := fmt.Sprintf("- %s %s %s", r.Emoji, ui.Key.Render(r.Name), state)
				if len(r.Unlocks) > 0 {
					line += " " + ui.Dim.Render(fmt.Sprintf("unlocks: %v", r.Unlocks))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	return cmd
}
