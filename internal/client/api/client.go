// Package api implements the HTTP client for the remote User/Inventory
// service. The client owns a single mutable bearer-token slot; once set,
// the token is attached to every request until it is cleared.
package api

import (
	"context"

	"github.com/minseo-k/fridgekeeper/internal/client/models"
)

// TokenResponse is the body returned by a successful credential exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	LoginID     string `json:"login_id"`
	UserID      int64  `json:"user_id"`
}

// Client is the remote-service surface the rest of the application uses.
type Client interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, loginID, password string) (*TokenResponse, error)
	// CreateUser registers a new account. The service returns no body;
	// the new user is not logged in.
	CreateUser(ctx context.Context, loginID, username, password1, password2 string) error
	// DeleteUser removes the account, re-authenticating with the password.
	DeleteUser(ctx context.Context, userID int64, password string) error

	// ListItems returns the user's inventory.
	ListItems(ctx context.Context, userID int64) ([]models.Item, error)
	// DeleteItem removes a single inventory item.
	DeleteItem(ctx context.Context, itemID int64) error

	// SetAuthToken installs the bearer token used for subsequent requests.
	SetAuthToken(token string)
	// ClearAuthToken removes the installed bearer token.
	ClearAuthToken()
	// AuthToken returns the currently installed token, "" if none.
	AuthToken() string
}
