package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/engine"
	"github.com/MayaSCA/focus-city-scape/internal/tui"
	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func newStudyCmd() *cobra.Command {
	var goalMinutes int

	cmd := &cobra.Command{
		Use:   "study <city_id>",
		Short: "Run a timed study session",
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
			session, err := svc.StartSession(ctx, city.ID, goalMinutes)
			if err != nil {
				return err
			}

			res, canceled, err := tui.RunTimer(ctx, svc, city.Name, session, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if canceled {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Session canceled. Nothing was saved."))
				return nil
			}

			printCompletion(cmd, res)
			return nil
		},
	}

	cmd.Flags().IntVarP(&goalMinutes, "goal", "g", 25, "Goal duration in minutes")

	return cmd
}

func printCompletion(cmd *cobra.Command, res *engine.CompleteResult) {
	b := res.Building
	icon := ui.BuildingIcon(string(b.Type))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s built! %s\n",
		ui.Good.Render(ui.IconHammer+" Session complete:"), icon, b.Type, ui.GoalText(b.Completed))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins earned", fmt.Sprintf("%d (%s %d total)", res.CoinsEarned, ui.IconCoin, res.TotalCurrency)))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Height", fmt.Sprintf("%.0f", b.Height)))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Rooms unlocked", b.RoomsUnlocked))
	fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total studied", fmt.Sprintf("%.1fh", res.TotalStudyHours)))
	for _, r := range res.NewRibbons {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n", ui.BadgeRibbon, r.Emoji, ui.Gold.Render(r.Name), ui.Muted.Render(fmt.Sprintf("(%gh)", r.HoursRequired)))
	}
}
