package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"busjet/internal/cli"
	"busjet/internal/ui"
	"busjet/internal/workflow"
)

func searchCommand() *cli.Command {
	var criteria workflow.Criteria

	return &cli.Command{
		Name:    "search",
		Summary: "Search scheduled trips for a route and day",
		Usage:   "busjet search --from <city> --to <city> [--date YYYY-MM-DD]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
			fs.StringVar(&criteria.From, "from", "", "origin city (e.g. Dhaka)")
			fs.StringVar(&criteria.To, "to", "", "destination city (e.g. Chittagong)")
			fs.StringVar(&criteria.Date, "date", "", "travel date, YYYY-MM-DD (default: today)")
			return fs
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			a := newApp()
			criteria = criteria.WithDefaultDate()
			trips, err := workflow.Search(context.Background(), a.api, criteria)
			if err != nil {
				return err
			}

			fmt.Print(ui.TripList(trips, criteria.RouteName(), criteria.Date))
			if len(trips) > 0 {
				fmt.Println("Book with: busjet book --from", criteria.From, "--to", criteria.To,
					"--date", criteria.Date, "--trip <id> --seats <n>")
			}
			return nil
		},
	}
}
