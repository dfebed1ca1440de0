package store

import (
	"slices"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/service"
	"github.com/shopspring/decimal"
)

// Snapshot is a consistent copy of the cart together with the values
// derived from it.
type Snapshot struct {
	Items        []domain.CartItem
	ShippingCost decimal.Decimal
	ShippingInfo *domain.ShippingInfo
	IsLoading    bool
	Error        string

	IsEmpty   bool
	ItemCount int
	Totals    domain.CartTotals
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Items:        slices.Clone(s.items),
		ShippingCost: s.shippingCost,
		IsLoading:    s.isLoading,
		Error:        s.errMsg,
		IsEmpty:      len(s.items) == 0,
		ItemCount:    itemCount(s.items),
		Totals:       service.CalculateTotals(s.items, s.shippingCost),
	}

	if s.shippingInfo != nil {
		info := *s.shippingInfo
		snap.ShippingInfo = &info
	}

	return snap
}

func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.items)
}

func (s *Store) ShippingCost() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shippingCost
}

func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isLoading
}

// Error returns the message of the last failed action, or "" after a
// successful one.
func (s *Store) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.errMsg
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items) == 0
}

// ItemCount sums the quantities of all items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return itemCount(s.items)
}

func (s *Store) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	return service.CalculateTotals(s.items, s.shippingCost)
}

func itemCount(items []domain.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
