package admin

import (
	"context"
	"strings"

	"busjet/internal/api"
	"busjet/internal/domain"
)

// BusAPI is the slice of the backend contract the admin pages need.
type BusAPI interface {
	AddBus(ctx context.Context, token string, req api.AddBusRequest) error
	AdminStats(ctx context.Context, token string) (domain.Stats, error)
}

const defaultCapacity = 40

// BusForm is the add-bus form state: name, capacity, company, and a
// dynamically sized list of route rows. Row editing is plain in-memory
// list manipulation with no network effect.
type BusForm struct {
	Name        string
	Capacity    int
	CompanyName string
	Routes      []string
}

// NewBusForm returns the initial form: default capacity and a single empty
// route row.
func NewBusForm() BusForm {
	return BusForm{Capacity: defaultCapacity, Routes: []string{""}}
}

// AddRoute appends an empty route row.
func (f *BusForm) AddRoute() {
	f.Routes = append(f.Routes, "")
}

// RemoveRoute drops the row at index. The last remaining row cannot be
// removed; the form always shows at least one.
func (f *BusForm) RemoveRoute(index int) {
	if len(f.Routes) <= 1 || index < 0 || index >= len(f.Routes) {
		return
	}
	f.Routes = append(f.Routes[:index], f.Routes[index+1:]...)
}

// SetRoute updates the row at index.
func (f *BusForm) SetRoute(index int, name string) {
	if index >= 0 && index < len(f.Routes) {
		f.Routes[index] = name
	}
}

// Payload validates the form and builds the request. Blank route rows are
// filtered out; if none survive, the submission is blocked locally and no
// request is sent.
func (f *BusForm) Payload() (api.AddBusRequest, error) {
	var req api.AddBusRequest

	if strings.TrimSpace(f.Name) == "" {
		return req, domain.ValidationError{Field: "name", Msg: "bus name is required"}
	}
	if f.Capacity <= 0 {
		return req, domain.ValidationError{Field: "capacity", Msg: "capacity must be a positive number"}
	}
	if strings.TrimSpace(f.CompanyName) == "" {
		return req, domain.ValidationError{Field: "company", Msg: "company name is required"}
	}

	var routes []domain.Route
	for _, name := range f.Routes {
		if name = strings.TrimSpace(name); name != "" {
			routes = append(routes, domain.Route{Name: name})
		}
	}
	if len(routes) == 0 {
		return req, domain.ValidationError{Msg: "please add at least one valid route"}
	}

	req = api.AddBusRequest{
		Name:     strings.TrimSpace(f.Name),
		Capacity: f.Capacity,
		Company:  domain.Company{Name: strings.TrimSpace(f.CompanyName)},
		Routes:   routes,
	}
	return req, nil
}

// Submit validates, sends the single authenticated add-bus request, and on
// success resets the form to its initial empty state. Failures leave the
// form intact for correction.
func (f *BusForm) Submit(ctx context.Context, busAPI BusAPI, token string) error {
	req, err := f.Payload()
	if err != nil {
		return err
	}
	if err := busAPI.AddBus(ctx, token, req); err != nil {
		return err
	}
	*f = NewBusForm()
	return nil
}
