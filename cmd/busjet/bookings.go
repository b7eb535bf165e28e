package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"busjet/internal/cli"
	"busjet/internal/session"
	"busjet/internal/ticket"
	"busjet/internal/ui"
)

func bookingsCommand() *cli.Command {
	return &cli.Command{
		Name:    "bookings",
		Summary: "List your bookings",
		Usage:   "busjet bookings [export]",
		Subcommands: []*cli.Command{
			bookingsExportCommand(),
		},
		Run: func(args []string) error {
			ctx := context.Background()
			a := newApp()

			sess, err := a.requireSession(ctx, session.PageMyBookings)
			if err != nil {
				return err
			}

			bookings, err := a.api.MyBookings(ctx, sess.Token)
			if err != nil {
				return err
			}
			fmt.Print(ui.BookingList(bookings))
			return nil
		},
	}
}

func bookingsExportCommand() *cli.Command {
	var (
		bookingID int64
		outPath   string
	)

	return &cli.Command{
		Name:    "export",
		Summary: "Write an e-ticket PDF for one of your bookings",
		Usage:   "busjet bookings export --booking <id> [--out file.pdf]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
			fs.Int64Var(&bookingID, "booking", 0, "booking id from \"busjet bookings\"")
			fs.StringVar(&outPath, "out", "", "output file (default: suggested ticket name)")
			return fs
		},
		Run: func(args []string) error {
			if bookingID == 0 {
				return fmt.Errorf("--booking is required")
			}

			ctx := context.Background()
			a := newApp()

			sess, err := a.requireSession(ctx, session.PageMyBookings)
			if err != nil {
				return err
			}

			bookings, err := a.api.MyBookings(ctx, sess.Token)
			if err != nil {
				return err
			}

			for _, b := range bookings {
				if b.ID != bookingID {
					continue
				}
				data, filename, err := ticket.BuildETicket(b, sess.User)
				if err != nil {
					return fmt.Errorf("building e-ticket: %w", err)
				}
				if outPath == "" {
					outPath = filename
				}
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				fmt.Printf("E-ticket written to %s\n", outPath)
				return nil
			}
			return fmt.Errorf("booking %d not found in your bookings", bookingID)
		},
	}
}
