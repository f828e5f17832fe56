package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/engine"
	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

func loadCatalog(path string) (*engine.Catalog, error) {
	if path == "" {
		return engine.DefaultCatalog(), nil
	}
	return engine.LoadCatalog(path)
}

func newDecorateCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "decorate <building_id> <decoration_id>",
		Short: "Buy a decoration for a building",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("building_id and decoration_id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			def, ok := catalog.Get(args[1])
			if !ok {
				return fmt.Errorf("unknown decoration %q (see: sc shop)", args[1])
			}

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.PurchaseDecoration(ctx, args[0], def.ID, def.Cost); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconShop+" Bought"), def.Name,
				ui.Muted.Render(fmt.Sprintf("(-%d coins, %d left)", def.Cost, svc.TotalCurrency())))
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a JSON decoration catalog (default: built-in)")

	return cmd
}

func newShopCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List decorations for sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Decoration Shop"))
			for _, d := range catalog.Defs() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n",
					ui.Key.Render(d.ID), d.Name, ui.Muted.Render(fmt.Sprintf("%d coins", d.Cost)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a JSON decoration catalog (default: built-in)")

	return cmd
}
