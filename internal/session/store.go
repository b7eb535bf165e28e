package session

import (
	"context"

	"busjet/internal/domain"
)

// AuthAPI is the slice of the backend contract the session store needs.
// *api.Client satisfies it; tests substitute stubs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Signup(ctx context.Context, name, email, password string) error
	Profile(ctx context.Context, token string) (domain.User, error)
}

// Store is the single source of truth for "who is logged in". It owns the
// persisted token/user pair and keeps an in-memory snapshot for the current
// invocation. Operations assume one logical flow at a time; two concurrent
// logins simply last-write the session file.
type Store struct {
	path    string
	api     AuthAPI
	current *Session
}

// NewStore creates a store over the given session file path. An empty path
// means the well-known location.
func NewStore(path string, api AuthAPI) *Store {
	if path == "" {
		path = FilePath()
	}
	return &Store{path: path, api: api}
}

// Path returns the session file location in use.
func (s *Store) Path() string { return s.path }

// Current returns the in-memory session snapshot, nil when logged out.
func (s *Store) Current() *Session { return s.current }

// Initialize restores a persisted session. With no session file it
// completes with a nil session. With a stored token it re-resolves the
// profile; on resolution failure it performs a full logout (token, user
// and file all cleared) and reports ProfileResolutionError. The end state
// is identical to an explicit Logout.
func (s *Store) Initialize(ctx context.Context) (*Session, error) {
	stored, err := Load(s.path)
	if err != nil {
		// An unreadable session file is treated like a failed resolution:
		// tear it down rather than wedging every command.
		_ = s.Logout()
		return nil, domain.ProfileResolutionError{Msg: "stored session is unusable", Err: err}
	}
	if stored == nil {
		s.current = nil
		return nil, nil
	}

	user, err := s.api.Profile(ctx, stored.Token)
	if err != nil {
		if logoutErr := s.Logout(); logoutErr != nil {
			return nil, logoutErr
		}
		return nil, domain.ProfileResolutionError{Msg: "session expired or invalid", Err: err}
	}

	sess := &Session{Token: stored.Token, User: user}
	if err := save(s.path, sess); err != nil {
		return nil, err
	}
	s.current = sess
	return sess, nil
}

// Login authenticates and persists the resulting session. The token is
// persisted as soon as it is issued, before the profile fetch; if the
// profile fetch then fails the token stays on disk with no user attached,
// and the next Initialize either resolves it or tears it down.
func (s *Store) Login(ctx context.Context, email, password string) (*Session, error) {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	partial := &Session{Token: token}
	if err := save(s.path, partial); err != nil {
		return nil, err
	}
	s.current = partial

	user, err := s.api.Profile(ctx, token)
	if err != nil {
		return nil, domain.ProfileResolutionError{Msg: "could not retrieve user profile after login", Err: err}
	}

	sess := &Session{Token: token, User: user}
	if err := save(s.path, sess); err != nil {
		return nil, err
	}
	s.current = sess
	return sess, nil
}

// Register signs up a new non-privileged account. It does not log in.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	return s.api.Signup(ctx, name, email, password)
}

// Logout clears the in-memory and persisted session. Idempotent, no
// network call.
func (s *Store) Logout() error {
	s.current = nil
	return remove(s.path)
}
