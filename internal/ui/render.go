// Package ui renders trips, bookings and the admin dashboard for the
// terminal. Pure formatting; no state and no network.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"busjet/internal/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	soldOutStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginBottom(1)
	headerStyle  = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
)

// TripCard renders one search result.
func TripCard(t domain.Trip) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Bus.Name))
	b.WriteString("  " + labelStyle.Render(t.Route.Display()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  trip #%d\n", labelStyle.Render("departs "+t.DepartureTime.Local().Format("2006-01-02 15:04")), t.ID)
	b.WriteString(priceStyle.Render(fmt.Sprintf("$%.2f", t.Price)) + labelStyle.Render(" per seat") + "  ")
	if t.Bookable() {
		fmt.Fprintf(&b, "%d seats available", t.AvailableSeats)
	} else {
		b.WriteString(soldOutStyle.Render("Sold Out"))
	}
	return cardStyle.Render(b.String())
}

// TripList renders the search results page: a header with the criteria,
// then one card per trip. An empty list renders the "No Buses Found"
// block with a hint back to search; an empty result is not an error.
func TripList(trips []domain.Trip, routeName, date string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Search Results") + "\n")
	fmt.Fprintf(&b, "Showing buses for route %s on %s\n\n", titleStyle.Render(routeName), titleStyle.Render(date))

	if len(trips) == 0 {
		b.WriteString(warnStyle.Render("No Buses Found") + "\n")
		b.WriteString("Sorry, we couldn't find any buses for your search criteria.\n")
		b.WriteString(labelStyle.Render("Change the route or date and search again.") + "\n")
		return b.String()
	}

	for _, t := range trips {
		b.WriteString(TripCard(t) + "\n")
	}
	return b.String()
}

// BookingCard renders one booking.
func BookingCard(bk domain.Booking) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(bk.Trip.Bus.Name))
	b.WriteString("  " + labelStyle.Render(bk.Trip.Route.Display()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Seat %s  %s\n", priceStyle.Render(bk.SeatNumber), labelStyle.Render("booked "+bk.BookingTime.Local().Format("2006-01-02")))
	fmt.Fprintf(&b, "Departs: %s", bk.Trip.DepartureTime.Local().Format("2006-01-02 15:04"))
	return cardStyle.Render(b.String())
}

// BookingList renders the bookings page, newest departure first.
func BookingList(bookings []domain.Booking) string {
	if len(bookings) == 0 {
		return warnStyle.Render("No Bookings Found") + "\nYou haven't booked any trips yet.\n"
	}

	sorted := make([]domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Trip.DepartureTime.After(sorted[j].Trip.DepartureTime)
	})

	var b strings.Builder
	b.WriteString(headerStyle.Render("My Bookings") + "\n\n")
	for _, bk := range sorted {
		b.WriteString(BookingCard(bk) + "\n")
	}
	return b.String()
}

// StatsPanel renders the admin dashboard snapshot. When the fetch failed
// the counters show a placeholder instead of an error.
func StatsPanel(stats domain.Stats, ok bool) string {
	value := func(n int) string {
		if !ok {
			return "--"
		}
		return fmt.Sprintf("%d", n)
	}

	box := func(label, v string) string {
		return cardStyle.Render(titleStyle.Render(label) + "\n" + headerStyle.Render(v))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		box("Total Buses", value(stats.TotalBuses)),
		box("Total Customers", value(stats.TotalCustomers)),
		box("Total Bookings", value(stats.TotalBookings)),
	)
	return headerStyle.Render("Admin Dashboard") + "\n\n" + row + "\n"
}

// Successf renders a green confirmation line.
func Successf(format string, args ...any) string {
	return successStyle.Render(fmt.Sprintf(format, args...))
}
