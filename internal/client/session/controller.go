// Package session owns the client's notion of "who is logged in".
//
// The Controller is the single writer of three pieces of state that must
// stay consistent: the in-memory user, the bearer token installed in the
// API client, and the durable snapshot in the local store. Consumers read
// through Snapshot, which hands out copies.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/minseo-k/fridgekeeper/internal/client/api"
	"github.com/minseo-k/fridgekeeper/internal/client/models"
	"github.com/minseo-k/fridgekeeper/internal/client/repositories/localstore"
	"github.com/minseo-k/fridgekeeper/internal/dbx"
	"github.com/minseo-k/fridgekeeper/internal/logging"
)

// Durable storage keys.
const (
	tokenKey = "token"
	userKey  = "user"
)

// Session is a read-only snapshot of the authentication state.
type Session struct {
	User            *models.User
	IsAuthenticated bool
	IsLoading       bool
}

// Controller mediates every credentialed operation. It allows at most one
// mutating operation in flight; overlapping calls fail with ErrBusy instead
// of racing on the user and the token slot.
type Controller struct {
	api api.Client
	db  *sql.DB
	log logging.Logger

	flight *semaphore.Weighted

	mu      sync.RWMutex
	user    *models.User
	loading bool
}

// NewController creates an anonymous session. It reports loading until
// Restore has run once.
func NewController(apiClient api.Client, db *sql.DB, log logging.Logger) *Controller {
	return &Controller{
		api:     apiClient,
		db:      db,
		log:     log,
		flight:  semaphore.NewWeighted(1),
		loading: true,
	}
}

func (c *Controller) repo(db dbx.DBTX) localstore.Repository {
	return localstore.NewSQLiteRepository(db)
}

// begin claims the single-flight slot and raises the loading flag.
func (c *Controller) begin() error {
	if !c.flight.TryAcquire(1) {
		return ErrBusy
	}
	c.setLoading(true)
	return nil
}

// end is the unconditional cleanup path: loading is lowered and the slot
// released no matter how the operation finished.
func (c *Controller) end() {
	c.setLoading(false)
	c.flight.Release(1)
}

func (c *Controller) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// Restore loads the cached session from durable storage. Called once at
// startup. A missing or unreadable cached user leaves the session anonymous
// and drops the stale entry; a well-formed one installs the token and user.
// Restore never validates the cached token against the remote service.
func (c *Controller) Restore(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	repo := c.repo(c.db)

	token, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	if len(token) == 0 {
		return nil
	}

	raw, err := repo.Get(ctx, userKey)
	if err != nil {
		return err
	}

	var u models.User
	if len(raw) == 0 || json.Unmarshal(raw, &u) != nil {
		// Stale or corrupt cache must never leave the app half
		// authenticated; drop it and start anonymous.
		c.log.Warn(ctx, "dropping unreadable cached session")
		return repo.Delete(ctx, userKey)
	}

	c.mu.Lock()
	c.api.SetAuthToken(string(token))
	c.user = &u
	c.mu.Unlock()

	c.log.Info(ctx, "session restored", "login_id", u.LoginID)
	return nil
}

// Login exchanges credentials for a token and opens a session. The service
// returns no profile on this call, so the user record starts minimal: the
// login id doubles as the display name until the user renames it.
//
// On failure nothing changes, and the returned *AuthError carries a
// message fit for display.
func (c *Controller) Login(ctx context.Context, loginID, password string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	tr, err := c.api.Login(ctx, loginID, password)
	if err != nil {
		return newAuthError("login", loginFailedMsg, err)
	}

	u := &models.User{
		UserID:               tr.UserID,
		LoginID:              tr.LoginID,
		Username:             tr.LoginID,
		NotificationsEnabled: true,
	}

	// Persist first: if the snapshot cannot be written the session must
	// stay anonymous, with no token installed.
	if err := c.persistSession(ctx, tr.AccessToken, u); err != nil {
		return newAuthError("login", loginFailedMsg, err)
	}

	c.mu.Lock()
	c.api.SetAuthToken(tr.AccessToken)
	c.user = u
	c.mu.Unlock()

	c.log.Info(ctx, "logged in", "login_id", u.LoginID, "user_id", u.UserID)
	return nil
}

// persistSession writes token and user in one transaction so the durable
// snapshot can never hold one without the other.
func (c *Controller) persistSession(ctx context.Context, token string, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := c.repo(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, userKey, raw)
	})
}

// Signup registers a new account. It does not log the user in; session
// state is untouched either way. The caller validates field presence and
// the password confirmation before calling.
func (c *Controller) Signup(ctx context.Context, loginID, username, password1, password2 string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	if err := c.api.CreateUser(ctx, loginID, username, password1, password2); err != nil {
		return newAuthError("signup", signupFailedMsg, err)
	}

	c.log.Info(ctx, "account created", "login_id", loginID)
	return nil
}

// Logout clears the installed token and the in-memory user, synchronously.
// The durable snapshot is left alone, and the remote service is not told.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	c.api.ClearAuthToken()
	c.user = nil
	c.mu.Unlock()

	c.log.Info(ctx, "logged out")
}

// UpdateUser merges the patch into the current user and persists the
// result. There is no remote endpoint for profile updates yet; the merge is
// local, and the context stays in the signature for when one exists.
func (c *Controller) UpdateUser(ctx context.Context, patch models.UserPatch) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	c.mu.RLock()
	cur := c.user.Clone()
	c.mu.RUnlock()
	if cur == nil {
		return &UpdateError{Err: errors.New("no authenticated user")}
	}

	merged := patch.Apply(*cur)

	raw, err := json.Marshal(&merged)
	if err != nil {
		return &UpdateError{Err: err}
	}
	if err := c.repo(c.db).Set(ctx, userKey, raw); err != nil {
		return &UpdateError{Err: err}
	}

	c.mu.Lock()
	c.user = &merged
	c.mu.Unlock()
	return nil
}

// DeleteAccount asks the remote service to remove the current account,
// re-authenticating with the password, then performs the same cleanup as
// Logout. A rejected deletion leaves the session untouched.
func (c *Controller) DeleteAccount(ctx context.Context, password string) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	c.mu.RLock()
	cur := c.user
	c.mu.RUnlock()
	if cur == nil {
		return newAuthError("delete account", deleteFailedMsg, errors.New("no authenticated user"))
	}

	if err := c.api.DeleteUser(ctx, cur.UserID, password); err != nil {
		return newAuthError("delete account", deleteFailedMsg, err)
	}

	c.mu.Lock()
	c.api.ClearAuthToken()
	c.user = nil
	c.mu.Unlock()

	c.log.Info(ctx, "account deleted", "user_id", cur.UserID)
	return nil
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Session{
		User:            c.user.Clone(),
		IsAuthenticated: c.user != nil,
		IsLoading:       c.loading,
	}
}

// CurrentUser returns a copy of the authenticated user, nil when anonymous.
func (c *Controller) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user.Clone()
}

func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user != nil
}

func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}
