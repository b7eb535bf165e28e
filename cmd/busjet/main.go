// Command busjet is the terminal client for the BusJet bus-ticket booking
// service: search scheduled trips, register and log in, book seats, list
// bookings, and (for admins) view statistics and register buses. All
// business logic lives in the backend; this client drives its HTTP API.
package main

import (
	"fmt"
	"os"

	"busjet/internal/cli"
)

func main() {
	root := &cli.Command{
		Name:    "busjet",
		Summary: "BusJet bus-ticket booking client",
		Subcommands: []*cli.Command{
			loginCommand(),
			registerCommand(),
			logoutCommand(),
			whoamiCommand(),
			searchCommand(),
			bookCommand(),
			bookingsCommand(),
			adminCommand(),
		},
	}

	if err := root.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
