package cart

import (
	"sync"
	"time"

	"github.com/sreeayiengaran/storefront-golang/internal/models"
)

// Session is one shopper's in-memory state: their cart plus, at most, one
// staged "buy now" item. The buy-now item deliberately lives outside the
// cart: staging it never merges with or discards unrelated cart rows, and a
// buy-now checkout leaves the cart exactly as it was.
type Session struct {
	ID   string
	Cart *Cart

	mu       sync.Mutex
	buyNow   *models.CartItem
	lastSeen time.Time
}

// StageBuyNow stages a single-item checkout snapshot, replacing any
// previously staged item. Quantity below 1 is clamped to 1, same as Add.
func (s *Session) StageBuyNow(item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.buyNow = &item
}

// BuyNowItem returns the staged item, if any.
func (s *Session) BuyNowItem() (models.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.buyNow == nil {
		return models.CartItem{}, false
	}
	return *s.buyNow, true
}

// ClearBuyNow discards the staged item. Called after the buy-now checkout
// completes (or is abandoned in favour of a cart checkout).
func (s *Session) ClearBuyNow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buyNow = nil
}

// Touch records shopper activity so the janitor does not evict a live session.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
}

func (s *Session) idleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen.Before(cutoff)
}
