package domain

import "fmt"

// ShippingType - классификация доставки для карточки товара
type ShippingType string

const (
	ShippingFree     ShippingType = "free"
	ShippingFull     ShippingType = "full"
	ShippingStandard ShippingType = "standard"
)

// Label возвращает подпись для витрины
func (s ShippingType) Label() string {
	switch s {
	case ShippingFree:
		return "Envío gratis"
	case ShippingFull:
		return "FULL"
	default:
		return "Envío a todo el país"
	}
}

// Product - товар из результатов поиска, готовый к показу
type Product struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Price              float64      `json:"price"`
	OriginalPrice      *float64     `json:"original_price,omitempty"`
	Image              string       `json:"image"`
	HasDiscount        bool         `json:"has_discount"`
	DiscountPercentage *int         `json:"discount_percentage,omitempty"`
	HasFreeShipping    bool         `json:"has_free_shipping"`
	ShippingType       ShippingType `json:"shipping_type"`
}

func (p Product) FormattedPrice() string {
	return formatPrice(p.Price)
}

// FormattedOriginalPrice возвращает пустую строку, если исходной цены нет
func (p Product) FormattedOriginalPrice() string {
	if p.OriginalPrice == nil {
		return ""
	}
	return formatPrice(*p.OriginalPrice)
}

// ProductDetail - детальная карточка товара
type ProductDetail struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Price           float64 `json:"price"`
	Image           string  `json:"image"`
	HasFreeShipping bool    `json:"has_free_shipping"`
}

func (d ProductDetail) FormattedPrice() string {
	return formatPrice(d.Price)
}

// SearchResult - одна страница поиска по продавцу
type SearchResult struct {
	Products []Product
	Total    int
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
