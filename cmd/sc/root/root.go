package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MayaSCA/focus-city-scape/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sc",
	Short:         "Study City — turn study sessions into a skyline",
	Long:          "Study City is a local-first study tracker: every timed session builds a building, earns coins, and works toward ribbon milestones.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newCreateCmd(),
		newDeleteCmd(),
		newListCmd(),
		newStudyCmd(),
		newLogCmd(),
		newStatusCmd(),
		newViewCmd(),
		newDecorateCmd(),
		newShopCmd(),
		newSkylineCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
