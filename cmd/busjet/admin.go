package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"busjet/internal/admin"
	"busjet/internal/cli"
	"busjet/internal/session"
	"busjet/internal/ui"
)

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:    "admin",
		Summary: "Administrator tools",
		Subcommands: []*cli.Command{
			adminStatsCommand(),
			adminBusCommand(),
			adminCustomersCommand(),
		},
	}
}

func adminStatsCommand() *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Summary: "Show the aggregate dashboard snapshot",
		Usage:   "busjet admin stats",
		Run: func(args []string) error {
			ctx := context.Background()
			a := newApp()

			sess, err := a.requireSession(ctx, session.PageAdminDashboard)
			if err != nil {
				return err
			}

			// A failed fetch shows placeholders instead of blocking.
			stats, ok := admin.FetchStats(ctx, a.api, sess.Token)
			fmt.Print(ui.StatsPanel(stats, ok))
			return nil
		},
	}
}

func adminBusCommand() *cli.Command {
	var form admin.BusForm

	addCmd := &cli.Command{
		Name:    "add",
		Summary: "Register a new bus with its company and routes",
		Usage:   "busjet admin bus add --name <name> --capacity <n> --company <name> --route <Origin-Destination> [--route ...]",
		Flags: func() *pflag.FlagSet {
			form = admin.NewBusForm()
			fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
			fs.StringVar(&form.Name, "name", "", "bus name")
			fs.IntVar(&form.Capacity, "capacity", form.Capacity, "seat capacity")
			fs.StringVar(&form.CompanyName, "company", "", "operating company name")
			fs.StringArrayVar(&form.Routes, "route", form.Routes, "served route as Origin-Destination (repeatable)")
			return fs
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}

			ctx := context.Background()
			a := newApp()

			sess, err := a.requireSession(ctx, session.PageAdminBuses)
			if err != nil {
				return err
			}

			name := form.Name
			if err := form.Submit(ctx, a.api, sess.Token); err != nil {
				return err
			}
			fmt.Println(ui.Successf("Bus %q added successfully!", name))
			return nil
		},
	}

	return &cli.Command{
		Name:        "bus",
		Summary:     "Manage buses",
		Subcommands: []*cli.Command{addCmd},
	}
}

func adminCustomersCommand() *cli.Command {
	return &cli.Command{
		Name:    "customers",
		Summary: "View registered customers",
		Usage:   "busjet admin customers",
		Run: func(args []string) error {
			ctx := context.Background()
			a := newApp()

			if _, err := a.requireSession(ctx, session.PageAdminCustomers); err != nil {
				return err
			}

			// The backend does not expose a customer listing yet.
			fmt.Println("Customer management is coming soon.")
			return nil
		},
	}
}
