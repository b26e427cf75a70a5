// Package cart mirrors the server-owned cart on the client. Every mutation
// is a round trip; the local slice is only a cache of the backend's line
// items.
package cart

import (
	"context"
	"log/slog"
	"sync"

	apperrors "github.com/savorworks/storefront-client/internal/errors"
	"github.com/savorworks/storefront-client/internal/models"
	"github.com/savorworks/storefront-client/internal/session"
	"github.com/savorworks/storefront-client/pkg/storeapi"
)

var (
	// ErrLoginRequired guards every mutation; surfaced without a network call.
	ErrLoginRequired = apperrors.PreconditionError("You must be logged in to modify the cart.")

	// ErrQuantityFloor rejects any quantity below 1 before it reaches the wire.
	ErrQuantityFloor = apperrors.PreconditionError("Quantity must be at least 1.")
)

// Synchronizer reconciles local cart state with the backend.
//
// Reconciliation is deliberately asymmetric: Add refetches the whole cart so
// line ids are always server-assigned, while Remove and UpdateQuantity patch
// locally from the response. Overlapping mutations against the same line are not serialized;
// the last response to land wins.
type Synchronizer struct {
	mu      sync.RWMutex
	api     storeapi.Client
	session *session.Store
	logger  *slog.Logger
	items   []models.CartItem
}

func NewSynchronizer(api storeapi.Client, sessionStore *session.Store, logger *slog.Logger) *Synchronizer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Synchronizer{
		api:     api,
		session: sessionStore,
		logger:  logger,
	}
}

// Fetch replaces the local cart with the server's line items. Logged out, it
// clears the local cart without touching the network. A failed fetch
// degrades to an empty cart and reports the error.
func (s *Synchronizer) Fetch(ctx context.Context) error {
	userID := s.session.UserID()
	if userID == 0 {
		s.replace(nil)

		return nil
	}

	items, err := s.api.GetCart(ctx, userID)
	if err != nil {
		s.logger.Warn("cart fetch failed", slog.String("error", err.Error()))
		s.replace(nil)

		return err
	}

	s.replace(items)

	return nil
}

// Add posts a new line and then refetches the whole cart, so subsequent
// mutations always target server-authoritative ids. The server decides the
// resulting quantity (it may merge into an existing line).
func (s *Synchronizer) Add(ctx context.Context, item *models.FoodItem, quantity int) error {
	if quantity < 1 {
		return ErrQuantityFloor
	}

	userID := s.session.UserID()
	if userID == 0 {
		return ErrLoginRequired
	}

	req := &models.AddCartItemRequest{FoodItemID: item.ID, Quantity: quantity}
	if err := s.api.AddCartItem(ctx, userID, req); err != nil {
		return err
	}

	return s.Fetch(ctx)
}

// Remove deletes a line and drops it locally by id without a refetch. This
// assumes the delete cannot succeed as a no-op.
func (s *Synchronizer) Remove(ctx context.Context, lineItemID int64) error {
	userID := s.session.UserID()
	if userID == 0 {
		return ErrLoginRequired
	}

	if err := s.api.RemoveCartItem(ctx, userID, lineItemID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]

	for _, item := range s.items {
		if item.ID != lineItemID {
			kept = append(kept, item)
		}
	}

	s.items = kept

	return nil
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are rejected
// locally with no network call. On success the local line takes the server's
// echoed quantity when present, else the requested one — the backend is not
// guaranteed to echo the field.
func (s *Synchronizer) UpdateQuantity(ctx context.Context, lineItemID int64, quantity int) error {
	if quantity < 1 {
		return ErrQuantityFloor
	}

	userID := s.session.UserID()
	if userID == 0 {
		return ErrLoginRequired
	}

	updated, err := s.api.UpdateCartItem(ctx, userID, lineItemID, &models.UpdateCartItemRequest{Quantity: quantity})
	if err != nil {
		return err
	}

	newQuantity := quantity
	if updated != nil && updated.Quantity > 0 {
		newQuantity = updated.Quantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == lineItemID {
			s.items[i].Quantity = newQuantity

			break
		}
	}

	return nil
}

// Clear deletes the whole cart resource and empties local state.
func (s *Synchronizer) Clear(ctx context.Context) error {
	userID := s.session.UserID()
	if userID == 0 {
		return ErrLoginRequired
	}

	if err := s.api.ClearCart(ctx, userID); err != nil {
		return err
	}

	s.replace(nil)

	return nil
}

func (s *Synchronizer) replace(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
}

// Items returns a copy of the current line items.
func (s *Synchronizer) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	return items
}

// TotalItems sums quantities across all lines.
func (s *Synchronizer) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0

	for _, item := range s.items {
		total += item.Quantity
	}

	return total
}

// TotalPrice sums quantity times unit price across all lines.
func (s *Synchronizer) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64

	for _, item := range s.items {
		total += float64(item.Quantity) * item.UnitPrice()
	}

	return total
}
