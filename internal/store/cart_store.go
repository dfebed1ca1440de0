// Package store keeps the in-memory cart of one shopping session and
// orchestrates product loading against the pricing rules.
//
// A Store is created by the composition root and handed to its consumers.
// Actions can be called from any goroutine; the lock is never held while a
// request to the product API is in flight, and the result of a request is
// applied to the cart in a single critical section.
//
// Failures of the product API never leave the store: they are logged and
// exposed through Error. Invalid quantities are silently ignored.
package store

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
	"github.com/nikolayk812/shopcart/internal/service"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultInitLimit = 5

	// shipping is drawn in cents from [minShippingCents, maxShippingCents)
	minShippingCents = 1000
	maxShippingCents = 3000
)

// The product API echoes only a subset of the fields on creation, the rest
// of a new item comes from these.
var (
	newProductTitle = "New Product"
	newProductPrice = decimal.NewFromInt(29)

	newProductTemplate = domain.Product{
		Title:       newProductTitle,
		Price:       newProductPrice,
		Description: "A freshly added product, created through the product API.",
		Category:    domain.CategoryElectronics,
		Image:       "https://fakestoreapi.com/img/61IBBVJvSDL._AC_SY879_.jpg",
		Rating: domain.Rating{
			Rate:  decimal.RequireFromString("4.0"),
			Count: 100,
		},
	}
)

type Store struct {
	repo         port.ProductRepository
	logger       *zap.Logger
	initLimit    int
	initCategory domain.Category
	intN         func(n int) int

	mu           sync.Mutex
	items        []domain.CartItem
	shippingCost decimal.Decimal
	shippingInfo *domain.ShippingInfo
	isLoading    bool
	errMsg       string
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInitLimit sets how many products InitializeCart loads.
func WithInitLimit(limit int) Option {
	return func(s *Store) {
		s.initLimit = limit
	}
}

// WithInitCategory makes InitializeCart load a whole category instead of
// the first products of the catalogue.
func WithInitCategory(category domain.Category) Option {
	return func(s *Store) {
		s.initCategory = category
	}
}

// WithRandom replaces the source of CalculateShipping; intN must return a
// value in [0, n).
func WithRandom(intN func(n int) int) Option {
	return func(s *Store) {
		if intN != nil {
			s.intN = intN
		}
	}
}

func New(repo port.ProductRepository, opts ...Option) *Store {
	s := &Store{
		repo:         repo,
		logger:       zap.NewNop(),
		initLimit:    defaultInitLimit,
		intN:         rand.IntN,
		shippingCost: decimal.Zero,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(zap.String("session_id", uuid.NewString()))

	return s
}

// InitializeCart replaces the items with the loaded products at quantity 1,
// in the order the API returns them. On failure the items are kept.
//
// A ClearCart issued while the request is in flight is overwritten by the
// result.
func (s *Store) InitializeCart(ctx context.Context) {
	s.beginLoading()
	defer s.endLoading()

	products, err := s.fetchInitialProducts(ctx)
	if err != nil {
		s.fail("failed to load products", err)
		return
	}

	items := make([]domain.CartItem, 0, len(products))
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		items = append(items, domain.CartItem{Product: p, Quantity: domain.MinQuantity})
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Info("cart initialized", zap.Int("items", len(items)))
}

// fetchInitialProducts returns repository errors unwrapped: their message is
// what Error reports.
func (s *Store) fetchInitialProducts(ctx context.Context) ([]domain.Product, error) {
	if s.initCategory != "" {
		return s.repo.GetProductsByCategory(ctx, s.initCategory)
	}
	return s.repo.GetProducts(ctx, s.initLimit)
}

// AddItem creates a demo product through the API and appends it at
// quantity 1. A product already in the cart gets its quantity raised by one
// instead, as long as its stock allows. When the API echoes no id, the
// item gets one above the highest id in the cart.
func (s *Store) AddItem(ctx context.Context) {
	s.beginLoading()
	defer s.endLoading()

	title, price := newProductTitle, newProductPrice
	created, err := s.repo.CreateProduct(ctx, domain.ProductDraft{
		Title: &title,
		Price: &price,
	})
	if err != nil {
		s.fail("failed to add product", err)
		return
	}

	product := domain.MergeProduct(newProductTemplate, created)

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID <= 0 {
		product.ID = s.nextLocalID()
		s.logger.Warn("created product has no id, assigned a local one", zap.Int("product_id", product.ID))
	}

	if i := s.indexOf(product.ID); i >= 0 {
		item := &s.items[i]
		if service.ValidateQuantity(item.Quantity+1, item.MaxQuantity()) {
			item.Quantity++
		}
		return
	}

	s.items = append(s.items, domain.CartItem{Product: product, Quantity: domain.MinQuantity})
}

// RemoveItem is a no-op for a product that is not in the cart.
func (s *Store) RemoveItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.DeleteFunc(s.items, func(item domain.CartItem) bool {
		return item.Product.ID == productID
	})
}

// UpdateQuantity applies quantity only when it lies within
// [domain.MinQuantity, stock of the product]. Invalid quantities and unknown
// products leave the cart untouched; the result reports whether the
// quantity was applied.
func (s *Store) UpdateQuantity(productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return false
	}

	item := &s.items[i]
	if !service.ValidateQuantity(quantity, item.MaxQuantity()) {
		s.logger.Debug("quantity rejected",
			zap.Int("product_id", productID),
			zap.Int("quantity", quantity),
			zap.Int("stock", item.MaxQuantity()),
		)
		return false
	}

	item.Quantity = quantity
	return true
}

// ClearCart empties the cart and resets shipping together with its
// destination; loading and error state are kept.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.shippingCost = decimal.Zero
	s.shippingInfo = nil
}

// CalculateShipping draws a shipping cost between 10.00 and 29.99.
func (s *Store) CalculateShipping() {
	cents := minShippingCents + s.intN(maxShippingCents-minShippingCents)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.shippingCost = decimal.New(int64(cents), -2)
}

// SetShippingInfo validates and records the destination, then recalculates
// shipping.
func (s *Store) SetShippingInfo(info domain.ShippingInfo) error {
	info = info.Normalize()
	if err := info.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.shippingInfo = &info
	s.mu.Unlock()

	s.CalculateShipping()

	return nil
}

func (s *Store) beginLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = true
	s.errMsg = ""
}

func (s *Store) endLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.isLoading = false
}

func (s *Store) fail(msg string, err error) {
	s.logger.Error(msg, zap.Error(err))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = err.Error()
}

// nextLocalID must be called with s.mu held.
func (s *Store) nextLocalID() int {
	id := 0
	for _, item := range s.items {
		id = max(id, item.Product.ID)
	}
	return id + 1
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(productID int) int {
	return slices.IndexFunc(s.items, func(item domain.CartItem) bool {
		return item.Product.ID == productID
	})
}
