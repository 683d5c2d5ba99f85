package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/ui"
)

func newLeaderboardCmd(flags *storeFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show players ranked by total XP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, res := svc.GetLeaderboard(ctx, limit)
			if !res.Success {
				return errors.New(res.Error)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Leaderboard"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No players yet."))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s %-24s %s %s\n",
					ui.Rank(e.Rank),
					e.DisplayName,
					ui.LabelValue("lvl", e.Level),
					ui.LabelValue("xp", e.TotalXP),
				)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", progress.DefaultLeaderboardLimit, "number of players to show")
	return cmd
}
