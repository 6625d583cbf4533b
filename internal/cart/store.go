// Package cart implements the storefront's cart state holder and its
// persistence boundary.
package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/greenbasket/checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// Storage persists cart snapshots under a key. Loading a key that has never
// been written returns (nil, nil).
type Storage interface {
	Load(ctx context.Context, key string) ([]domain.CartItem, error)
	Save(ctx context.Context, key string, items []domain.CartItem) error
}

// Observer is notified with the full item list after every cart change.
type Observer func(items []domain.CartItem)

type changeFn func(ctx context.Context, items []domain.CartItem)

// Store is the canonical in-memory cart for a single browser session.
//
// Mutations operate purely on in-memory state and then notify observers.
// Persistence is itself an observer registered at construction, so every
// mutation is followed by a best-effort save: storage failures never reach
// mutation callers. Derived values (Subtotal, ItemCount) are recomputed from
// the items on demand and never stored, so they cannot diverge.
type Store struct {
	mu       sync.Mutex
	key      string
	storage  Storage
	logger   *slog.Logger
	items    []domain.CartItem
	onChange []changeFn
}

func NewStore(key string, storage Storage, logger *slog.Logger) *Store {
	s := &Store{
		key:     key,
		storage: storage,
		logger:  logger,
	}

	s.onChange = append(s.onChange, s.save)

	return s
}

// OnChange registers an observer for subsequent cart changes.
func (s *Store) OnChange(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onChange = append(s.onChange, func(_ context.Context, items []domain.CartItem) {
		fn(items)
	})
}

// Load hydrates the store from storage. An absent key, an unavailable
// storage, or an undecodable snapshot all hydrate to an empty cart; Load
// never fails visibly.
func (s *Store) Load(ctx context.Context) {
	items, err := s.storage.Load(ctx, s.key)
	if err != nil {
		s.logger.Debug("cart hydration failed, starting empty", "key", s.key, "error", err)
		items = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = items
}

// AddItem adds an item to the cart. A quantity below one is treated as one.
// When a line with the same id and size already exists, only its quantity is
// incremented by the incoming quantity; the incoming descriptive fields
// (name, price, image, ...) are discarded and the existing line's fields
// win. Callers that need a price change must remove and re-add the line.
func (s *Store) AddItem(ctx context.Context, item domain.CartItem) {
	s.mu.Lock()

	quantity := item.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	merged := false
	for i := range s.items {
		if s.items[i].SameLine(item) {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		item.Quantity = quantity
		s.items = append(s.items, item)
	}

	s.notify(ctx)
}

// RemoveItem removes the line matching id and size. Removing an absent line
// is a no-op.
func (s *Store) RemoveItem(ctx context.Context, id, size string) {
	s.mu.Lock()

	filtered := s.items[:0]
	for _, item := range s.items {
		if !(item.ID == id && item.Size == size) {
			filtered = append(filtered, item)
		}
	}
	s.items = filtered

	s.notify(ctx)
}

// UpdateQuantity sets the matching line's quantity to exactly quantity,
// replacing the previous value. A quantity of zero or less removes the
// line. Updating an absent line is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id, size string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, id, size)
		return
	}

	s.mu.Lock()

	for i := range s.items {
		if s.items[i].ID == id && s.items[i].Size == size {
			s.items[i].Quantity = quantity
			break
		}
	}

	s.notify(ctx)
}

// Clear resets the cart to an empty sequence.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()

	s.items = nil

	s.notify(ctx)
}

// Items returns a copy of the current cart lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Subtotal is the sum of price times quantity over all lines.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := decimal.Zero
	for _, item := range s.items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return subtotal
}

// ItemCount is the sum of quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

// notify runs every change subscriber with a snapshot of the items.
// Must be called with the lock held; releases it.
func (s *Store) notify(ctx context.Context) {
	items := s.snapshot()
	subscribers := s.onChange
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(ctx, items)
	}
}

func (s *Store) snapshot() []domain.CartItem {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

// save is the change subscriber registered at construction. Persistence is
// best-effort: failures are swallowed here and never reach mutation callers.
func (s *Store) save(ctx context.Context, items []domain.CartItem) {
	if err := s.storage.Save(ctx, s.key, items); err != nil {
		s.logger.Debug("cart persistence failed", "key", s.key, "error", err)
	}
}
