package repository

import (
	"fmt"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
)

type ratingDTO struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type productDTO struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      ratingDTO `json:"rating"`
}

type productPayload struct {
	Title       *string  `json:"title,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

func mapProductDTOToDomain(dto productDTO) (domain.Product, error) {
	category, err := domain.ParseCategory(dto.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseCategory: %w", err)
	}

	if dto.Price < 0 {
		return domain.Product{}, fmt.Errorf("price[%v] of product[%d] is negative", dto.Price, dto.ID)
	}

	return domain.Product{
		ID:          dto.ID,
		Title:       dto.Title,
		Price:       decimal.NewFromFloat(dto.Price),
		Description: dto.Description,
		Category:    category,
		Image:       dto.Image,
		Rating: domain.Rating{
			Rate:  decimal.NewFromFloat(dto.Rating.Rate),
			Count: dto.Rating.Count,
		},
	}, nil
}

func mapProductDTOsToDomain(dtos []productDTO) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(dtos))

	for _, dto := range dtos {
		product, err := mapProductDTOToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("mapProductDTOToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}

func mapDraftToPayload(draft domain.ProductDraft) productPayload {
	payload := productPayload{
		Title:       draft.Title,
		Description: draft.Description,
		Image:       draft.Image,
	}

	if draft.Price != nil {
		price := draft.Price.InexactFloat64()
		payload.Price = &price
	}

	if draft.Category != nil {
		category := string(*draft.Category)
		payload.Category = &category
	}

	return payload
}
