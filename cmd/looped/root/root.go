package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SaiAmirthesh/Looped-sub000/internal/ui"
)

const Version = "0.1.0"

// storeFlags override the configured database.
type storeFlags struct {
	driver string
	dsn    string
}

func newRootCmd() *cobra.Command {
	flags := &storeFlags{}
	cmd := &cobra.Command{
		Use:           "looped",
		Short:         "Looped: habits, quests and focus sessions that level you up",
		Long:          "Operator CLI for the Looped backend: run migrations, inspect progress, serve the API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&flags.driver, "driver", "", "database driver (postgres|sqlite), defaults to DB_DRIVER")
	cmd.PersistentFlags().StringVar(&flags.dsn, "dsn", "", "postgres URL or sqlite path, defaults to the configured database")

	cmd.AddCommand(
		newMigrateCmd(flags),
		newLeaderboardCmd(flags),
		newDashboardCmd(flags),
		newCalendarCmd(flags),
		newServeCmd(flags),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
