package store

import (
	"context"
	"errors"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
)

var errNotStubbed = errors.New("not stubbed")

// fakeRepository stubs port.ProductRepository; unset funcs fail.
type fakeRepository struct {
	mu    sync.Mutex
	calls []string

	getProducts           func(ctx context.Context, limit int) ([]domain.Product, error)
	getProductsByCategory func(ctx context.Context, category domain.Category) ([]domain.Product, error)
	createProduct         func(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
}

func (f *fakeRepository) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRepository) GetProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	f.record("GetProducts")
	if f.getProducts == nil {
		return nil, errNotStubbed
	}
	return f.getProducts(ctx, limit)
}

func (f *fakeRepository) GetProductByID(context.Context, int) (domain.Product, error) {
	f.record("GetProductByID")
	return domain.Product{}, errNotStubbed
}

func (f *fakeRepository) CreateProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	f.record("CreateProduct")
	if f.createProduct == nil {
		return domain.Product{}, errNotStubbed
	}
	return f.createProduct(ctx, draft)
}

func (f *fakeRepository) UpdateProduct(context.Context, int, domain.ProductDraft) (domain.Product, error) {
	f.record("UpdateProduct")
	return domain.Product{}, errNotStubbed
}

func (f *fakeRepository) DeleteProduct(context.Context, int) error {
	f.record("DeleteProduct")
	return errNotStubbed
}

func (f *fakeRepository) GetProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	f.record("GetProductsByCategory")
	if f.getProductsByCategory == nil {
		return nil, errNotStubbed
	}
	return f.getProductsByCategory(ctx, category)
}

// mockProduct is the 109.95 backpack with 120 ratings used across tests.
func mockProduct() domain.Product {
	return domain.Product{
		ID:          1,
		Title:       "Fjallraven - Foldsack No. 1 Backpack, Fits 15 Laptops",
		Price:       decimal.RequireFromString("109.95"),
		Description: "Your perfect pack for everyday use and walks in the forest.",
		Category:    domain.CategoryMensClothing,
		Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
		Rating: domain.Rating{
			Rate:  decimal.RequireFromString("3.9"),
			Count: 120,
		},
	}
}

func mockProducts(n int) []domain.Product {
	products := make([]domain.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, domain.Product{
			ID:          i,
			Title:       gofakeit.ProductName(),
			Price:       decimal.NewFromFloat(gofakeit.Price(1, 500)),
			Description: gofakeit.ProductDescription(),
			Category:    domain.Categories()[gofakeit.Number(0, len(domain.Categories())-1)],
			Image:       gofakeit.URL(),
			Rating: domain.Rating{
				Rate:  decimal.NewFromFloat(gofakeit.Float64Range(0, 5)),
				Count: gofakeit.IntRange(10, 500),
			},
		})
	}
	return products
}
