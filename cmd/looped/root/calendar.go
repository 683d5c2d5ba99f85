package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SaiAmirthesh/Looped-sub000/internal/ui"
)

func newCalendarCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <userID> <year> <month>",
		Short: "Show the days a user completed habits in a month",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
			month, err := strconv.Atoi(args[2])
			if err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[2])
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			data, res := svc.GetMonthCompletions(ctx, args[0], year, month)
			if !res.Success {
				return errors.New(res.Error)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCal, fmt.Sprintf("%04d-%02d", year, month)))
			fmt.Fprintln(out, ui.LabelValue("Active days", len(data.Dates)))
			fmt.Fprintln(out, ui.LabelValue("XP earned", data.TotalXP))
			for _, d := range data.Dates {
				fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone), d)
			}
			for _, r := range data.Reminders {
				when := r.ReminderDate
				if r.ReminderTime != "" {
					when += " " + r.ReminderTime
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.IconBell, when, r.Title)
			}
			return nil
		},
	}
}
