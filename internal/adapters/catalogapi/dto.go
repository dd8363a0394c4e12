package catalogapi

import (
	"bytes"
	"encoding/json"
)

// SearchResponseDTO - ответ GET /sites/{site}/search
type SearchResponseDTO struct {
	Results []SearchItemDTO `json:"results"`
	Paging  *PagingDTO      `json:"paging,omitempty"`
	Total   *int            `json:"total,omitempty"`
}

type PagingDTO struct {
	Total *int `json:"total,omitempty"`
}

// SearchItemDTO - товар в результатах поиска.
// id и title обязательны, остальные поля разбираются мягко: цена может прийти
// целым или дробным числом, битые необязательные поля просто отбрасываются.
type SearchItemDTO struct {
	ID                 string
	Title              string
	Price              float64
	OriginalPrice      *float64
	Thumbnail          *string
	SecureThumbnailURL *string
	Shipping           *ShippingDTO
}

type ShippingDTO struct {
	FreeShipping *bool    `json:"free_shipping,omitempty"`
	LogisticType *string  `json:"logistic_type,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type searchItemWire struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Price           json.RawMessage `json:"price"`
	OriginalPrice   json.RawMessage `json:"original_price"`
	Thumbnail       json.RawMessage `json:"thumbnail"`
	SecureThumbnail json.RawMessage `json:"secure_thumbnail"`
	Shipping        json.RawMessage `json:"shipping"`
}

func (s *SearchItemDTO) UnmarshalJSON(data []byte) error {
	var wire searchItemWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*s = SearchItemDTO{
		ID:                 wire.ID,
		Title:              wire.Title,
		Thumbnail:          lenientString(wire.Thumbnail),
		SecureThumbnailURL: lenientString(wire.SecureThumbnail),
		Shipping:           lenientShipping(wire.Shipping),
	}

	// отсутствующая или нечисловая цена - 0.0, а не ошибка
	if price, ok := lenientFloat(wire.Price); ok {
		s.Price = price
	}
	if orig, ok := lenientFloat(wire.OriginalPrice); ok {
		s.OriginalPrice = &orig
	}
	return nil
}

// ItemDetailDTO - ответ GET /items/{id}
type ItemDetailDTO struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Price    float64      `json:"price"`
	Pictures []PictureDTO `json:"pictures,omitempty"`
	Shipping *ShippingDTO `json:"shipping,omitempty"`
}

type PictureDTO struct {
	URL *string `json:"url,omitempty"`
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// lenientFloat принимает и целые, и дробные числа
func lenientFloat(raw json.RawMessage) (float64, bool) {
	if isNull(raw) {
		return 0, false
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	v, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return v, true
}

func lenientString(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

func lenientShipping(raw json.RawMessage) *ShippingDTO {
	if isNull(raw) {
		return nil
	}
	var shipping ShippingDTO
	if err := json.Unmarshal(raw, &shipping); err != nil {
		return nil
	}
	return &shipping
}
