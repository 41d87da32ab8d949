package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-humandate"
	"github.com/spf13/cobra"
)

func newFormatCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format TEMPLATE [DATE]",
		Short: "Render a date through a template, now when DATE is omitted",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			out, err := engine.Format(dateArg(args, 1), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse DATE",
		Short: "Parse a date and print it as RFC 3339",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			t, err := engine.ParseString(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
			return nil
		},
	}
}

func newGridCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "grid [DATE]",
		Short: "Print the Monday first month grid around DATE",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			ref, err := engine.Parse(dateArg(args, 0))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, engine.FormatTime(ref, "F Y"))
			fmt.Fprintln(out, strings.Join(engine.Locale().Weekdays.Min, " "))

			row := make([]string, 0, 7)
			for _, day := range humandate.MonthGrid(ref) {
				cell := engine.FormatTime(day, "d")
				if day.Month() != ref.Month() {
					cell = "  "
				}
				row = append(row, cell)
				if len(row) == 7 {
					fmt.Fprintln(out, strings.Join(row, " "))
					row = row[:0]
				}
			}
			return nil
		},
	}
}

func newDistanceCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "distance FROM TILL",
		Short: "Measure the distance between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			dist, err := engine.Distance(humandate.FromString(args[0]), humandate.FromString(args[1]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, engine.Plural(dist.Years, humandate.UnitYear))
			fmt.Fprintln(out, engine.Plural(dist.Months, humandate.UnitMonth))
			fmt.Fprintln(out, engine.Plural(dist.Weeks, humandate.UnitWeek))
			fmt.Fprintln(out, engine.Plural(dist.Days, humandate.UnitDay))
			fmt.Fprintf(out, "%02d:%02d:%02d\n", dist.Hours, dist.Minutes%60, dist.Seconds%60)
			return nil
		},
	}
}

func newHolidayCommand(opts *options) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "holiday [DATE]",
		Short: "Report whether DATE is a weekend day or a listed holiday",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			if list != "" {
				if err := engine.SetHolidayList(engine.LocaleKey(), list); err != nil {
					return err
				}
			}
			ok, err := engine.IsHoliday(dateArg(args, 0))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&list, "holidays", "", "semicolon separated holiday dates for the active locale")
	return cmd
}

func newTemplatesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List parse templates in the order they are tried",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			for _, entry := range engine.Templates().Entries() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", entry.Template, entry.Rewrite)
			}
			return nil
		},
	}
}

func newLocalesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List registered locales, the active one marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			active := engine.LocaleKey()
			for _, key := range engine.Locales().Keys() {
				marker := " "
				if key == active {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, key)
			}
			return nil
		},
	}
}
