package ticket

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"busjet/internal/domain"
)

// BuildETicket renders one booking as a printable e-ticket PDF. Returns
// the document bytes and a suggested filename.
func BuildETicket(booking domain.Booking, holder domain.User) ([]byte, string, error) {
	trip := booking.Trip

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("BusJet E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUSJET E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger    : %s", safe(holder.Name, "-")),
		fmt.Sprintf("Email        : %s", safe(holder.Email, "-")),
		fmt.Sprintf("Bus          : %s (%s)", safe(trip.Bus.Name, "-"), safe(trip.Bus.Company.Name, "-")),
		fmt.Sprintf("Route        : %s", safe(strings.Replace(trip.Route.Name, "-", " -> ", 1), "-")),
		fmt.Sprintf("Departs      : %s", formatTime(trip.DepartureTime)),
		fmt.Sprintf("Arrives      : %s", formatTime(trip.ArrivalTime)),
		fmt.Sprintf("Seat         : %s", safe(booking.SeatNumber, "-")),
		fmt.Sprintf("Price        : $%.2f", trip.Price),
		fmt.Sprintf("Booked on    : %s", formatTime(booking.BookingTime)),
		fmt.Sprintf("Booking code : %s", booking.Reference()),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket covers one passenger (one seat). Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", booking.ID, safeFilenamePart(booking.SeatNumber))
	return buf.Bytes(), filename, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// safeFilenamePart strips characters that make poor filenames.
func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteByte('_')
		}
	}
	if out.Len() == 0 {
		return "ticket"
	}
	return out.String()
}
