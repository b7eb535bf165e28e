package session

// Page describes a navigable destination and what it demands of the
// session. AdminOnly implies RequireAuth.
type Page struct {
	Path        string
	RequireAuth bool
	AdminOnly   bool
}

// The navigable pages. Anything not listed resolves to the home redirect.
var (
	PageHome           = Page{Path: "/"}
	PageLogin          = Page{Path: "/login"}
	PageRegister       = Page{Path: "/register"}
	PageFindBuses      = Page{Path: "/find-buses"}
	PageMyBookings     = Page{Path: "/my-bookings", RequireAuth: true}
	PageAdminDashboard = Page{Path: "/admin/dashboard", RequireAuth: true, AdminOnly: true}
	PageAdminBuses     = Page{Path: "/admin/buses", RequireAuth: true, AdminOnly: true}
	PageAdminCustomers = Page{Path: "/admin/customers", RequireAuth: true, AdminOnly: true}
)

var pages = []Page{
	PageHome, PageLogin, PageRegister, PageFindBuses,
	PageMyBookings, PageAdminDashboard, PageAdminBuses, PageAdminCustomers,
}

// Access is the route guard's verdict for one navigation.
type Access int

const (
	// Allow renders the page.
	Allow Access = iota
	// RedirectLogin sends an unauthenticated visitor to the login page.
	RedirectLogin
	// RedirectHome sends a non-admin away from an admin page.
	RedirectHome
)

// Guard decides whether the current session may view a page. Pure and
// synchronous over the session snapshot; callers re-evaluate whenever the
// snapshot changes.
func Guard(page Page, sess *Session) Access {
	if !page.RequireAuth && !page.AdminOnly {
		return Allow
	}
	if !sess.Resolved() {
		return RedirectLogin
	}
	if page.AdminOnly && !sess.User.Role.IsAdmin() {
		return RedirectHome
	}
	return Allow
}

// Resolve maps a client path to its page. Unknown paths land on home,
// mirroring the catch-all redirect.
func Resolve(path string) (Page, bool) {
	for _, p := range pages {
		if p.Path == path {
			return p, true
		}
	}
	return PageHome, false
}
