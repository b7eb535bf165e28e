package apistub

import (
	"time"

	"busjet/internal/domain"
)

// Seed loads demo accounts, buses and a week of trips so the CLI has
// something to search against out of the box.
//
// Accounts: admin@busjet.test / admin123 (admin),
// rahim@example.test / password123 (customer).
func Seed(s *Store) {
	_, _ = s.CreateUser("BusJet Admin", "admin@busjet.test", "admin123", domain.RoleAdmin)
	_, _ = s.CreateUser("Rahim Uddin", "rahim@example.test", "password123", domain.RoleUser)

	greenLine := s.AddBus("Green Line Express", 40, domain.Company{Name: "Green Line"},
		[]domain.Route{{Name: "Dhaka-Chittagong"}, {Name: "Dhaka-Sylhet"}})
	shyamoli := s.AddBus("Shyamoli Deluxe", 36, domain.Company{Name: "Shyamoli Paribahan"},
		[]domain.Route{{Name: "Dhaka-Chittagong"}, {Name: "Dhaka-Rajshahi"}})

	// One morning and one night departure per route for the next 7 days.
	// Local midnight, matching how search dates are parsed.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	for day := 0; day < 7; day++ {
		date := today.AddDate(0, 0, day)

		_, _ = s.AddTrip(greenLine.ID, "Dhaka-Chittagong",
			date.Add(8*time.Hour), date.Add(14*time.Hour), 18.50, greenLine.Capacity)
		_, _ = s.AddTrip(greenLine.ID, "Dhaka-Sylhet",
			date.Add(9*time.Hour), date.Add(14*time.Hour), 15.00, greenLine.Capacity)
		_, _ = s.AddTrip(shyamoli.ID, "Dhaka-Chittagong",
			date.Add(22*time.Hour), date.Add(28*time.Hour), 16.00, shyamoli.Capacity)
		_, _ = s.AddTrip(shyamoli.ID, "Dhaka-Rajshahi",
			date.Add(7*time.Hour), date.Add(13*time.Hour), 12.75, shyamoli.Capacity)
	}
}
