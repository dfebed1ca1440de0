package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Category string

const (
	CategoryMensClothing   Category = "men's clothing"
	CategoryWomensClothing Category = "women's clothing"
	CategoryElectronics    Category = "electronics"
	CategoryJewelery       Category = "jewelery"
)

var categories = []Category{
	CategoryMensClothing,
	CategoryWomensClothing,
	CategoryElectronics,
	CategoryJewelery,
}

func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory accepts an empty string as "no category": the remote API
// omits it on partial echoes.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return "", nil
	}

	for _, c := range categories {
		if string(c) == s {
			return c, nil
		}
	}

	return "", fmt.Errorf("category[%s] is not valid", s)
}

type Product struct {
	ID          int
	Title       string
	Price       decimal.Decimal
	Description string
	Category    Category
	Image       string
	Rating      Rating
}

// Rating.Count doubles as the available stock of a product.
type Rating struct {
	Rate  decimal.Decimal
	Count int
}

// MergeProduct fills the zero fields of partial from template.
func MergeProduct(template, partial Product) Product {
	result := template

	if partial.ID != 0 {
		result.ID = partial.ID
	}
	if partial.Title != "" {
		result.Title = partial.Title
	}
	if !partial.Price.IsZero() {
		result.Price = partial.Price
	}
	if partial.Description != "" {
		result.Description = partial.Description
	}
	if partial.Category != "" {
		result.Category = partial.Category
	}
	if partial.Image != "" {
		result.Image = partial.Image
	}
	if !partial.Rating.Rate.IsZero() {
		result.Rating.Rate = partial.Rating.Rate
	}
	if partial.Rating.Count != 0 {
		result.Rating.Count = partial.Rating.Count
	}

	return result
}

// ProductDraft carries the fields of a create or update call; nil fields are
// not sent.
type ProductDraft struct {
	Title       *string
	Price       *decimal.Decimal
	Description *string
	Category    *Category
	Image       *string
}
