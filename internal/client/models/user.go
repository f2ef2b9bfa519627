// Package models defines the client-side view of the remote API's entities.
package models

// User is an account on the remote service as this client sees it.
// The JSON tags match both the wire format and the durable session snapshot.
type User struct {
	UserID               int64   `json:"user_id"`
	LoginID              string  `json:"login_id"`
	Username             string  `json:"username"`
	NotificationsEnabled bool    `json:"notification"`
	PushToken            *string `json:"fcm_token"`
}

// Clone returns a deep copy, or nil for a nil receiver.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.PushToken != nil {
		v := *u.PushToken
		c.PushToken = &v
	}
	return &c
}

// UserPatch is a partial update of a User's mutable fields.
// A nil field leaves the corresponding value unchanged.
type UserPatch struct {
	Username             *string
	NotificationsEnabled *bool
	PushToken            *string
}

// Apply merges the patch into u and returns the result.
func (p UserPatch) Apply(u User) User {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.NotificationsEnabled != nil {
		u.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.PushToken != nil {
		v := *p.PushToken
		u.PushToken = &v
	}
	return u
}
