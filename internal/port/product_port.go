package port

import (
	"context"

	"github.com/nikolayk812/shopcart/internal/domain"
)

type ProductRepository interface {
	GetProducts(ctx context.Context, limit int) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (domain.Product, error)
	CreateProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
	UpdateProduct(ctx context.Context, id int, draft domain.ProductDraft) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	GetProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error)
}
