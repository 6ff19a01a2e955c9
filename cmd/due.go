package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show questions due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		now := time.Now()
		due := state.sched.SelectDue(state.repo.All(), now)
		if len(due) == 0 {
			fmt.Println("Nothing due. Nice work.")
			return nil
		}

		fmt.Println(titleStyle.Render("Due for review"))
		for _, q := range due {
			when := "new"
			if q.NextReview != nil {
				when = fmt.Sprintf("%.0fh overdue", srs.OverdueHours(q, now))
			}
			fmt.Printf("%s  %-40.40s  %s\n", dimStyle.Render(shortID(q.ID)), q.Text, when)
		}

		suggested := srs.SuggestSessionSize(len(due), state.cfg.Session.TargetMinutes, 0)
		fmt.Println(dimStyle.Render(fmt.Sprintf(
			"%d due, about %d fit in a %d minute session",
			len(due), suggested, state.cfg.Session.TargetMinutes)))
		return nil
	},
}

var forecastDays int

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Show the review load for the coming days",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		fmt.Println(titleStyle.Render("Review forecast"))
		for _, day := range state.sched.Forecast(state.repo.All(), forecastDays, time.Now()) {
			bar := ""
			for i := 0; i < day.Count; i++ {
				bar += "▪"
			}
			fmt.Printf("%s  %3d %s\n", day.Date, day.Count, bar)
		}
		return nil
	},
}

var (
	redistMaxPerDay int
	redistDeferDays int
)

var redistributeCmd = &cobra.Command{
	Use:   "redistribute",
	Short: "Level the daily review load",
	Long: "Redistribute defers reviews from overloaded days to the next free day, " +
		"up to a maximum deferral. Run it as an occasional maintenance step.",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		state.sched.Redistribute(state.repo.All(), redistMaxPerDay, redistDeferDays)
		if err := state.save(cmd.Context(), time.Now()); err != nil {
			return err
		}
		fmt.Println("Review schedule rebalanced.")
		return nil
	},
}

func init() {
	forecastCmd.Flags().IntVarP(&forecastDays, "days", "d", 7, "Number of days to forecast")
	redistributeCmd.Flags().IntVar(&redistMaxPerDay, "max-per-day", srs.DefaultMaxPerDay, "Maximum reviews per day")
	redistributeCmd.Flags().IntVar(&redistDeferDays, "defer-days", srs.DefaultMaxDeferDays, "Maximum days a review may be deferred")
}
