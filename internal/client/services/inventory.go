// Package services contains application services for the fridgekeeper
// client. This file defines the inventory service: listing the signed-in
// user's fridge items and deleting a selection of them.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/minseo-k/fridgekeeper/internal/client/api"
	"github.com/minseo-k/fridgekeeper/internal/client/models"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the narrow view of the session controller the inventory
// service needs: who is signed in right now.
type Session interface {
	CurrentUser() *models.User
}

type InventoryService struct {
	client  api.Client
	session Session
}

func NewInventoryService(client api.Client, session Session) *InventoryService {
	return &InventoryService{client: client, session: session}
}

// List returns the current user's items, soonest expiry first.
// Returns ErrNotAuthenticated when nobody is signed in.
func (s *InventoryService) List(ctx context.Context) ([]models.Item, error) {
	u := s.session.CurrentUser()
	if u == nil {
		return nil, ErrNotAuthenticated
	}

	items, err := s.client.ListItems(ctx, u.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	// ISO dates sort correctly as strings.
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExpiryDate < items[j].ExpiryDate
	})
	return items, nil
}

// DeleteItems removes each of the given items. Failures do not stop the
// remaining deletions; all of them are reported together.
func (s *InventoryService) DeleteItems(ctx context.Context, ids []int64) error {
	if s.session.CurrentUser() == nil {
		return ErrNotAuthenticated
	}

	var errs []error
	for _, id := range ids {
		if err := s.client.DeleteItem(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("item %d: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
