package main

import (
	"context"
	"fmt"

	"busjet/internal/api"
	"busjet/internal/config"
	"busjet/internal/domain"
	"busjet/internal/session"
)

// app bundles the pieces every command needs: environment, API client and
// session store. Built once per invocation.
type app struct {
	env   config.Env
	api   *api.Client
	store *session.Store
}

func newApp() *app {
	env := config.LoadEnv()
	client := api.New(env.APIBaseURL)
	return &app{
		env:   env,
		api:   client,
		store: session.NewStore(env.SessionFile, client),
	}
}

// initSession restores the persisted session, treating a failed profile
// resolution as "not logged in" (the store has already torn the session
// down by then).
func (a *app) initSession(ctx context.Context) (*session.Session, error) {
	sess, err := a.store.Initialize(ctx)
	if err != nil {
		if domain.IsProfileResolution(err) {
			return nil, nil
		}
		return nil, err
	}
	return sess, nil
}

// requireSession restores the session and applies the route guard for the
// given page, translating redirects into actionable errors.
func (a *app) requireSession(ctx context.Context, page session.Page) (*session.Session, error) {
	sess, err := a.initSession(ctx)
	if err != nil {
		return nil, err
	}

	switch session.Guard(page, sess) {
	case session.RedirectLogin:
		return nil, fmt.Errorf("you are not logged in; run \"busjet login <email>\" first")
	case session.RedirectHome:
		return nil, fmt.Errorf("admin access required")
	}
	return sess, nil
}
