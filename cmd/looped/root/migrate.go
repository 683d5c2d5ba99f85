package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SaiAmirthesh/Looped-sub000/internal/ui"
)

func newMigrateCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Opening the store applies migrations.
			_, cfg, cleanup, err := openStore(context.Background(), flags)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" migrations applied ("+cfg.DBDriver+")"))
			return nil
		},
	}
}
