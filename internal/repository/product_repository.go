package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nikolayk812/shopcart/internal/apiclient"
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/port"
)

const productsEndpoint = "/products"

type productRepository struct {
	client *apiclient.Client
}

func NewProduct(client *apiclient.Client) port.ProductRepository {
	return &productRepository{
		client: client,
	}
}

func (r *productRepository) GetProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	var opts []apiclient.RequestOption
	if limit > 0 {
		opts = append(opts, apiclient.Param("limit", limit))
	}

	resp, err := apiclient.Get[[]productDTO](ctx, r.client, productsEndpoint, opts...)
	if err != nil {
		return nil, fmt.Errorf("apiclient.Get: %w", err)
	}

	products, err := mapProductDTOsToDomain(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("mapProductDTOsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, fmt.Errorf("id is not positive")
	}

	resp, err := apiclient.Get[productDTO](ctx, r.client, productPath(id))
	if err != nil {
		return domain.Product{}, fmt.Errorf("apiclient.Get: %w", err)
	}

	// the API answers unknown ids with an empty body
	if resp.Data.ID == 0 {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrProductNotFound)
	}

	product, err := mapProductDTOToDomain(resp.Data)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductDTOToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	resp, err := apiclient.Post[productDTO](ctx, r.client, productsEndpoint, mapDraftToPayload(draft))
	if err != nil {
		return domain.Product{}, fmt.Errorf("apiclient.Post: %w", err)
	}

	product, err := mapProductDTOToDomain(resp.Data)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductDTOToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, id int, draft domain.ProductDraft) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, fmt.Errorf("id is not positive")
	}

	resp, err := apiclient.Put[productDTO](ctx, r.client, productPath(id), mapDraftToPayload(draft))
	if err != nil {
		return domain.Product{}, fmt.Errorf("apiclient.Put: %w", err)
	}

	product, err := mapProductDTOToDomain(resp.Data)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductDTOToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("id is not positive")
	}

	if _, err := apiclient.Delete[productDTO](ctx, r.client, productPath(id)); err != nil {
		return fmt.Errorf("apiclient.Delete: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductsByCategory(ctx context.Context, category domain.Category) ([]domain.Product, error) {
	if category == "" {
		return nil, fmt.Errorf("category is empty")
	}

	endpoint := productsEndpoint + "/category/" + url.PathEscape(string(category))

	resp, err := apiclient.Get[[]productDTO](ctx, r.client, endpoint)
	if err != nil {
		return nil, fmt.Errorf("apiclient.Get: %w", err)
	}

	products, err := mapProductDTOsToDomain(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("mapProductDTOsToDomain: %w", err)
	}

	return products, nil
}

func productPath(id int) string {
	return productsEndpoint + "/" + strconv.Itoa(id)
}
