package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string
	var gotRequestID string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotRequestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "abc",
			"token_type":   "bearer",
			"login_id":     "alice",
			"user_id":      7,
		})
	}))

	tr, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, &TokenResponse{AccessToken: "abc", TokenType: "bearer", LoginID: "alice", UserID: 7}, tr)
	require.Equal(t, map[string]string{"login_id": "alice", "password": "pw"}, gotBody)
	require.NotEmpty(t, gotRequestID)
}

func TestLogin_RejectedWithDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "wrong password"})
	}))

	_, err := c.Login(context.Background(), "alice", "bad")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "wrong password", apiErr.Detail)
	require.Equal(t, "wrong password", ErrorDetail(err))
}

func TestLogin_RejectedWithoutDetail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Login(context.Background(), "alice", "pw")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Empty(t, apiErr.Detail)
	require.Empty(t, ErrorDetail(err))
}

func TestCreateUser_NoContent(t *testing.T) {
	var gotBody map[string]string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))

	err := c.CreateUser(context.Background(), "bob", "Bob", "p1", "p1")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"login_id": "bob", "username": "Bob", "password1": "p1", "password2": "p1",
	}, gotBody)
}

func TestDeleteUser_PathAndBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	var gotAuth string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	c.SetAuthToken("tok-1")

	require.NoError(t, c.DeleteUser(context.Background(), 7, "pw"))
	require.Equal(t, "/user/7/delete", gotPath)
	require.Equal(t, map[string]string{"password": "pw"}, gotBody)
	require.Equal(t, "Bearer tok-1", gotAuth)
}

func TestListItems(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/item/3", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"item_id": 1, "user_id": 3, "category_id": 2, "item_name": "milk", "expiry_date": "2026-09-01", "created_at": "2026-08-20T10:00:00"},
		})
	}))

	items, err := c.ListItems(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "milk", items[0].ItemName)
	require.Equal(t, int64(1), items[0].ItemID)
}

func TestAuthTokenSlot(t *testing.T) {
	var gotAuth []string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.Empty(t, c.AuthToken())
	require.NoError(t, c.DeleteItem(context.Background(), 1))

	c.SetAuthToken("abc")
	require.Equal(t, "abc", c.AuthToken())
	require.NoError(t, c.DeleteItem(context.Background(), 1))

	c.ClearAuthToken()
	require.Empty(t, c.AuthToken())
	require.NoError(t, c.DeleteItem(context.Background(), 1))

	require.Equal(t, []string{"", "Bearer abc", ""}, gotAuth)
}

func TestDo_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // port is now refusing connections
	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.Login(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrUnavailable)
}
