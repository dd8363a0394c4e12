package simulated

import "fmt"

// Синтетические DTO пишутся в JSON и читаются клиентом тем же декодером,
// что и ответы настоящего API

type mockSearchResponse struct {
	Results []mockSearchItem `json:"results"`
	Paging  *mockPaging      `json:"paging"`
	Total   *int             `json:"total"`
}

type mockPaging struct {
	Total *int `json:"total"`
}

type mockSearchItem struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Price           float64       `json:"price"`
	OriginalPrice   *float64      `json:"original_price"`
	Thumbnail       *string       `json:"thumbnail"`
	SecureThumbnail *string       `json:"secure_thumbnail"`
	Shipping        *mockShipping `json:"shipping"`
}

type mockShipping struct {
	FreeShipping *bool    `json:"free_shipping"`
	LogisticType *string  `json:"logistic_type"`
	Tags         []string `json:"tags"`
}

type mockItemDetail struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Price    float64       `json:"price"`
	Pictures []mockPicture `json:"pictures"`
	Shipping *mockShipping `json:"shipping"`
}

type mockPicture struct {
	URL *string `json:"url"`
}

const (
	placeholderThumbnail = "https://via.placeholder.com/140"
	placeholderPicture   = "https://via.placeholder.com/600x400"
)

// searchFixture: первый товар - бесплатная доставка + fulfillment и скидка,
// второй - обычная доставка без тегов
func searchFixture(prefix string) mockSearchResponse {
	results := []mockSearchItem{
		{
			ID:              fmt.Sprintf("%s_001", prefix),
			Title:           fmt.Sprintf("Producto %s 001", prefix),
			Price:           1000.0,
			OriginalPrice:   ptr(1200.0),
			Thumbnail:       ptr(placeholderThumbnail),
			SecureThumbnail: ptr(placeholderThumbnail),
			Shipping: &mockShipping{
				FreeShipping: ptr(true),
				LogisticType: ptr("fulfillment"),
				Tags:         []string{"full"},
			},
		},
		{
			ID:              fmt.Sprintf("%s_002", prefix),
			Title:           fmt.Sprintf("Producto %s 002", prefix),
			Price:           2000.0,
			Thumbnail:       ptr(placeholderThumbnail),
			SecureThumbnail: ptr(placeholderThumbnail),
			Shipping: &mockShipping{
				FreeShipping: ptr(false),
				LogisticType: ptr("me2"),
				Tags:         []string{},
			},
		},
	}

	total := len(results)
	return mockSearchResponse{
		Results: results,
		Paging:  &mockPaging{Total: ptr(total)},
		Total:   ptr(total),
	}
}

func detailFixture(itemID string) mockItemDetail {
	return mockItemDetail{
		ID:       itemID,
		Title:    fmt.Sprintf("Mocked %s Title", itemID),
		Price:    12345.99,
		Pictures: []mockPicture{{URL: ptr(placeholderPicture)}},
		Shipping: &mockShipping{
			FreeShipping: ptr(true),
			LogisticType: ptr("fulfillment"),
			Tags:         []string{"fulfillment"},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
