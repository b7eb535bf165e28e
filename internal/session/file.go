package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"busjet/internal/domain"
)

// Session pairs a bearer token with the user it resolved to. Both halves
// are persisted together and cleared together; a stored token without a
// resolvable user is torn down on the next initialization.
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Resolved reports whether the session carries a resolved user profile. A
// session can briefly hold only a token when login persisted the token but
// the follow-up profile fetch failed.
func (s *Session) Resolved() bool {
	return s != nil && s.Token != "" && s.User.ID != 0
}

// FilePath returns the session file location: BUSJET_SESSION_FILE if set,
// otherwise $XDG_CONFIG_HOME/busjet/session.json, otherwise
// ~/.config/busjet/session.json.
func FilePath() string {
	if envPath := os.Getenv("BUSJET_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "busjet-session.json")
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "busjet", "session.json")
}

// Load reads a session from path. A missing file is not an error; it means
// nobody is logged in.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", path, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", path, err)
	}
	if sess.Token == "" {
		return nil, fmt.Errorf("session file %s has no token", path)
	}
	return &sess, nil
}

// save writes a session to path. The parent directory is created with mode
// 0700 and the file with mode 0600 since it contains an access token.
func save(path string, sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", path, err)
	}
	return nil
}

// remove deletes the session file. Removing an absent file is fine.
func remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", path, err)
	}
	return nil
}
