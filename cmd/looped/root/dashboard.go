package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SaiAmirthesh/Looped-sub000/internal/ui"
	"github.com/SaiAmirthesh/Looped-sub000/internal/xp"
)

const barWidth = 20

func newDashboardCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard <userID>",
		Short: "Show a user's level, today's habits, open quests and skills",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			data, res := svc.GetDashboardData(ctx, args[0])
			if !res.Success {
				return errors.New(res.Error)
			}

			out := cmd.OutOrStdout()
			p := data.Profile
			level := xp.Progress{Level: p.Level, CurrentXP: p.CurrentXP}
			header := strings.Join([]string{
				ui.Heading(ui.IconSparkle, p.DisplayName),
				ui.LabelValue("Level", p.Level),
				fmt.Sprintf("%s %s %d/%d", ui.Key.Render("XP:"), ui.ProgressBar(level.Fraction(), barWidth), p.CurrentXP, p.NextLevelXP),
				ui.LabelValue("Total XP", p.TotalXP),
			}, "\n")
			fmt.Fprintln(out, ui.Panel.Render(header))
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render(ui.IconFlame+" Habits (today)"))
			if len(data.Habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("- none"))
			}
			for _, h := range data.Habits {
				fmt.Fprintf(out, "%s %s %s\n", ui.Check(h.CompletedToday), h.Name, ui.Muted.Render(fmt.Sprintf("(streak %d)", h.Streak)))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Open quests"))
			if len(data.Quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("- none"))
			}
			for _, q := range data.Quests {
				fmt.Fprintf(out, "- %s %s\n", q.Title, ui.Muted.Render(fmt.Sprintf("(%s, %d XP)", q.Difficulty, q.XPReward)))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("Skills"))
			for _, s := range data.Skills {
				sp := xp.Progress{Level: s.Level, CurrentXP: s.CurrentXP}
				fmt.Fprintf(out, "%-13s lvl %-3d %s\n", s.Name, s.Level, ui.ProgressBar(sp.Fraction(), barWidth))
			}
			return nil
		},
	}
}
