package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func lockCmd(lock bool) *cobra.Command {
	use, short := "lock <year>", "Lock the budget of a year"
	if !lock {
		use, short = "unlock <year>", "Unlock the budget of a year"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, userID, err := scope()
			if err != nil {
				return err
			}
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}

			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			version, err := env.services.Version.LockVersion(cmd.Context(), orgID, year, lock, userID)
			if err != nil {
				return err
			}
			if version.IsLocked {
				fmt.Println(successStyle.Render(fmt.Sprintf("Budget %d locked", year)) + mutedStyle.Render(lockedSuffix(*version)))
			} else {
				fmt.Println(successStyle.Render(fmt.Sprintf("Budget %d unlocked", year)))
			}
			return nil
		},
	}
}

func forecastCmd() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "forecast <year>",
		Short: "Derive the forecast of a year from its budget",
		Long: `Copy every budget amount of the year into the forecast. An existing forecast
is only replaced when --overwrite is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, userID, err := scope()
			if err != nil {
				return err
			}
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}

			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			if _, err := env.services.Version.CreateForecastFromBudget(cmd.Context(), orgID, year, overwrite, userID); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("Forecast %d derived from budget", year)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing forecast")
	return cmd
}

func closeMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close-month <year> <month>",
		Short: "Lock a month's actuals",
		Long: `Close a month for every active line item: a non-zero actual is kept,
otherwise the forecast becomes the actual. Re-running completes an interrupted close.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, userID, err := scope()
			if err != nil {
				return err
			}
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			month, err := parseMonth(args[1])
			if err != nil {
				return err
			}

			env, err := openEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			defer env.Close()

			result, err := env.services.Actuals.LockMonthAsActual(cmd.Context(), orgID, year, month, userID)
			if result != nil {
				fmt.Printf("%s copied=%d preserved=%d already-locked=%d\n",
					infoStyle.Render(fmt.Sprintf("%d-%02d", year, month)),
					result.Copied, result.Preserved, result.AlreadyLocked)
			}
			if err != nil {
				return fmt.Errorf("close stopped early, run the command again to finish: %w", err)
			}
			fmt.Println(successStyle.Render("Month closed"))
			return nil
		},
	}
}
