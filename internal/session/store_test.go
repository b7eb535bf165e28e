package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"busjet/internal/domain"
)

// fakeAuthAPI scripts the three auth calls the store makes.
type fakeAuthAPI struct {
	loginToken   string
	loginErr     error
	profileUser  domain.User
	profileErr   error
	signupErr    error
	loginCalls   int
	profileCalls int
	signupCalls  int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.loginCalls++
	return f.loginToken, f.loginErr
}

func (f *fakeAuthAPI) Profile(ctx context.Context, token string) (domain.User, error) {
	f.profileCalls++
	return f.profileUser, f.profileErr
}

func (f *fakeAuthAPI) Signup(ctx context.Context, name, email, password string) error {
	f.signupCalls++
	return f.signupErr
}

func testUser() domain.User {
	return domain.User{ID: 7, Name: "Rahim Uddin", Email: "rahim@example.test", Role: domain.RoleUser}
}

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoginPersistsResolvedSession(t *testing.T) {
	path := sessionPath(t)
	api := &fakeAuthAPI{loginToken: "tok-1", profileUser: testUser()}
	store := NewStore(path, api)

	sess, err := store.Login(context.Background(), "rahim@example.test", "password123")
	require.NoError(t, err)
	require.True(t, sess.Resolved())
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, testUser(), sess.User)

	// The persisted file round-trips to the same session.
	stored, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *sess, *stored)
}

func TestLoginPersistsTokenBeforeProfileFetch(t *testing.T) {
	path := sessionPath(t)
	api := &fakeAuthAPI{loginToken: "tok-1", profileErr: errors.New("boom")}
	store := NewStore(path, api)

	_, err := store.Login(context.Background(), "rahim@example.test", "password123")
	require.Error(t, err)
	assert.True(t, domain.IsProfileResolution(err))

	// The token survived on disk even though the profile never resolved.
	stored, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "tok-1", stored.Token)
	assert.False(t, stored.Resolved())

	// The in-memory snapshot is the same partial session.
	require.NotNil(t, store.Current())
	assert.False(t, store.Current().Resolved())
}

func TestLoginFailureLeavesNothingBehind(t *testing.T) {
	path := sessionPath(t)
	api := &fakeAuthAPI{loginErr: domain.AuthenticationError{Msg: "invalid email or password"}}
	store := NewStore(path, api)

	_, err := store.Login(context.Background(), "rahim@example.test", "wrong")
	require.Error(t, err)
	assert.True(t, domain.IsAuthentication(err))
	assert.Zero(t, api.profileCalls)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	assert.Nil(t, store.Current())
}

func TestInitializeWithoutFile(t *testing.T) {
	store := NewStore(sessionPath(t), &fakeAuthAPI{})

	sess, err := store.Initialize(context.Background())
	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Nil(t, store.Current())
}

func TestInitializeResolvesStoredToken(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, save(path, &Session{Token: "tok-1"}))

	api := &fakeAuthAPI{profileUser: testUser()}
	store := NewStore(path, api)

	sess, err := store.Initialize(context.Background())
	require.NoError(t, err)
	require.True(t, sess.Resolved())
	assert.Equal(t, testUser(), sess.User)

	// The refreshed profile was written back.
	stored, err := Load(path)
	require.NoError(t, err)
	assert.True(t, stored.Resolved())
}

func TestInitializeProfileFailureEqualsLogout(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, save(path, &Session{Token: "tok-stale", User: testUser()}))

	api := &fakeAuthAPI{profileErr: errors.New("401")}
	store := NewStore(path, api)

	sess, err := store.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsProfileResolution(err))
	assert.Nil(t, sess)

	// End state is indistinguishable from an explicit logout: no file, no
	// in-memory session.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	assert.Nil(t, store.Current())
}

func TestInitializeUnreadableFileTearsDown(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewStore(path, &fakeAuthAPI{})

	_, err := store.Initialize(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsProfileResolution(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLogoutClearsEverything(t *testing.T) {
	path := sessionPath(t)
	api := &fakeAuthAPI{loginToken: "tok-1", profileUser: testUser()}
	store := NewStore(path, api)

	_, err := store.Login(context.Background(), "rahim@example.test", "password123")
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	assert.Nil(t, store.Current())
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Logging out twice is fine.
	require.NoError(t, store.Logout())
}

func TestRegisterDelegatesToSignup(t *testing.T) {
	api := &fakeAuthAPI{}
	store := NewStore(sessionPath(t), api)

	require.NoError(t, store.Register(context.Background(), "Karim", "karim@example.test", "secret12"))
	assert.Equal(t, 1, api.signupCalls)
	// Registration never logs in.
	assert.Nil(t, store.Current())

	api.signupErr = domain.RegistrationError{Msg: "email already registered"}
	err := store.Register(context.Background(), "Karim", "karim@example.test", "secret12")
	assert.True(t, domain.IsRegistration(err))
}
