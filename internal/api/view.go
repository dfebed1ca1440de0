package api

import (
	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/nikolayk812/shopcart/internal/format"
	"github.com/nikolayk812/shopcart/internal/store"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const descriptionLength = 100

type priceView struct {
	Amount    decimal.Decimal `json:"amount"`
	Formatted string          `json:"formatted"`
}

type productView struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Price       priceView `json:"price"`
	Rating      string    `json:"rating"`
	Stock       int       `json:"stock"`
}

type itemView struct {
	Product   productView `json:"product"`
	Quantity  int         `json:"quantity"`
	LineTotal priceView   `json:"line_total"`
}

type totalsView struct {
	Subtotal priceView `json:"subtotal"`
	Shipping priceView `json:"shipping"`
	Tax      priceView `json:"tax"`
	Total    priceView `json:"total"`
}

type shippingInfoView struct {
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type cartView struct {
	Items        []itemView        `json:"items"`
	ShippingInfo *shippingInfoView `json:"shipping_info,omitempty"`
	IsLoading    bool              `json:"is_loading"`
	Error        string            `json:"error,omitempty"`
	IsEmpty      bool              `json:"is_empty"`
	ItemCount    int               `json:"item_count"`
	Totals       totalsView        `json:"totals"`
	Applied      *bool             `json:"applied,omitempty"`
}

func newCartView(snap store.Snapshot, unit currency.Unit) cartView {
	view := cartView{
		Items:     make([]itemView, 0, len(snap.Items)),
		IsLoading: snap.IsLoading,
		Error:     snap.Error,
		IsEmpty:   snap.IsEmpty,
		ItemCount: snap.ItemCount,
		Totals: totalsView{
			Subtotal: newPriceView(snap.Totals.Subtotal, unit),
			Shipping: newPriceView(snap.Totals.Shipping, unit),
			Tax:      newPriceView(snap.Totals.Tax, unit),
			Total:    newPriceView(snap.Totals.Total, unit),
		},
	}

	for _, item := range snap.Items {
		view.Items = append(view.Items, newItemView(item, unit))
	}

	if snap.ShippingInfo != nil {
		view.ShippingInfo = &shippingInfoView{
			City:    snap.ShippingInfo.City,
			State:   snap.ShippingInfo.State,
			ZipCode: snap.ShippingInfo.ZipCode,
		}
	}

	return view
}

func newItemView(item domain.CartItem, unit currency.Unit) itemView {
	p := item.Product
	lineTotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

	return itemView{
		Product: productView{
			ID:          p.ID,
			Title:       p.Title,
			Description: format.Truncate(p.Description, descriptionLength),
			Category:    string(p.Category),
			Image:       p.Image,
			Price:       newPriceView(p.Price, unit),
			Rating:      p.Rating.Rate.StringFixed(1),
			Stock:       p.Rating.Count,
		},
		Quantity:  item.Quantity,
		LineTotal: newPriceView(lineTotal, unit),
	}
}

func newPriceView(amount decimal.Decimal, unit currency.Unit) priceView {
	return priceView{
		Amount:    amount,
		Formatted: format.Price(domain.NewMoney(amount, unit)),
	}
}
