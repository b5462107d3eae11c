// Package cart holds the client-side shopping cart: an in-memory list of
// line items for the active identity, mirrored into a durable per-identity
// storage slot after every mutation.
package cart

import (
	"context"
	"log"

	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
	"github.com/tiembanh/cartstore/internal/pricing"
)

const keyPrefix = "cart:"

// Key derives the storage slot for an identity. The anonymous identity ""
// has no slot, its cart lives in memory only.
func Key(identity string) string {
	if identity == "" {
		return ""
	}
	return keyPrefix + identity
}

// Store is the authoritative cart for one identity. It is a single-writer
// object driven by UI events and is not safe for concurrent use; construct
// one per session instead of sharing it.
//
// Storage is fire-and-forget: a failed save is logged and the in-memory
// cart remains the source of truth, a failed or malformed load falls back
// to an empty cart. The store never enforces stock limits, that is the
// checkout guard's job.
type Store struct {
	storage port.CartStorage
	cfg     pricing.Config

	key   string
	items []domain.CartItem
}

func New(storage port.CartStorage, cfg pricing.Config) *Store {
	return &Store{storage: storage, cfg: cfg}
}

// Select switches the store to the given identity's slot, discarding the
// previous identity's in-memory items. Loading an absent cart is not an
// error, the cart starts empty.
func (s *Store) Select(ctx context.Context, identity string) {
	key := Key(identity)
	if key == s.key {
		return
	}

	s.key = key
	s.items = nil

	if key == "" {
		return
	}

	items, found, err := s.storage.Load(ctx, key)
	if err != nil {
		log.Printf("cart: load %q: %v", key, err)
		return
	}
	if found {
		s.items = items
	}
}

// AddItem appends the item, or merges it into an existing line with the
// same product: quantities add up while the stored unit price and display
// fields win, preserving price-at-first-add. Items with a quantity below 1
// or without a product id are ignored.
func (s *Store) AddItem(ctx context.Context, item domain.CartItem) {
	if item.ProductID == "" || item.Quantity < 1 {
		return
	}

	for i := range s.items {
		if s.items[i].ProductID == item.ProductID {
			s.items[i].Quantity += item.Quantity
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, item)
	s.persist(ctx)
}

// RemoveItem drops the line with the given product id. Removing an absent
// product is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the given product. A quantity of
// zero or less removes the line. Updating an absent product is a no-op.
// Callers are expected to clamp the quantity against live stock first.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}

	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart and deletes the persisted slot entirely.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil

	if s.key == "" {
		return
	}
	if err := s.storage.Remove(ctx, s.key); err != nil {
		log.Printf("cart: remove %q: %v", s.key, err)
	}
}

// Items returns a copy of the current line items.
func (s *Store) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// Totals derives the pricing breakdown from the current items. Pure read.
func (s *Store) Totals() pricing.Breakdown {
	return pricing.Calculate(s.items, s.cfg)
}

func (s *Store) TotalItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) persist(ctx context.Context) {
	if s.key == "" {
		return
	}
	if err := s.storage.Save(ctx, s.key, s.items); err != nil {
		// in-memory state stays authoritative for the session
		log.Printf("cart: save %q: %v", s.key, err)
	}
}
