package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"busjet/internal/cli"
	"busjet/internal/session"
	"busjet/internal/ui"
	"busjet/internal/workflow"
)

func bookCommand() *cli.Command {
	var (
		criteria workflow.Criteria
		tripID   int64
		seats    int
	)

	return &cli.Command{
		Name:    "book",
		Summary: "Book seats on a trip from the current search results",
		Usage:   "busjet book --from <city> --to <city> --date <date> --trip <id> --seats <n>",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("book", pflag.ContinueOnError)
			fs.StringVar(&criteria.From, "from", "", "origin city")
			fs.StringVar(&criteria.To, "to", "", "destination city")
			fs.StringVar(&criteria.Date, "date", "", "travel date, YYYY-MM-DD (default: today)")
			fs.Int64Var(&tripID, "trip", 0, "trip id from the search results")
			fs.IntVar(&seats, "seats", 1, "number of seats to book")
			return fs
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			if tripID == 0 {
				return fmt.Errorf("--trip is required (run \"busjet search\" to find trip ids)")
			}

			ctx := context.Background()
			a := newApp()

			// Booking requires a session; without one the user is sent to
			// login and the selection is discarded.
			sess, err := a.requireSession(ctx, session.Page{RequireAuth: true})
			if err != nil {
				return err
			}

			criteria = criteria.WithDefaultDate()
			trips, err := workflow.Search(ctx, a.api, criteria)
			if err != nil {
				return err
			}

			var selected *workflow.Result
			for _, trip := range trips {
				if trip.ID != tripID {
					continue
				}
				result, err := workflow.BookSeats(ctx, a.api, sess.Token, trip, seats)
				selected = &result
				if err != nil {
					// Seats confirmed before the failure stay booked; say
					// so instead of hiding the partial outcome.
					if confirmed := result.Confirmed(); len(confirmed) > 0 {
						fmt.Printf("%d of %d seats were booked before the failure (no rollback):\n", len(confirmed), seats)
						for _, b := range confirmed {
							fmt.Printf("  seat %s (booking #%d)\n", b.SeatNumber, b.ID)
						}
					}
					return err
				}
				break
			}
			if selected == nil {
				return fmt.Errorf("trip %d not found for %s on %s", tripID, criteria.RouteName(), criteria.Date)
			}

			fmt.Println(ui.Successf("Booked %d seat(s) on %s, total $%.2f",
				len(selected.Confirmed()), selected.Trip.Bus.Name, selected.TotalPrice()))

			// Mirror the post-booking navigation to the bookings list.
			bookings, err := a.api.MyBookings(ctx, sess.Token)
			if err != nil {
				return err
			}
			fmt.Print(ui.BookingList(bookings))
			return nil
		},
	}
}
