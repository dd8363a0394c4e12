package catalogapi

import (
	"math"
	"strings"

	"marketplace-client/internal/core/domain"

	"golang.org/x/text/cases"
)

// MapSearchItem - главный трансформер товара из поиска
func MapSearchItem(item SearchItemDTO) domain.Product {
	product := domain.Product{
		ID:            item.ID,
		Title:         item.Title,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		Image:         firstNonEmpty(item.Thumbnail, item.SecureThumbnailURL),
	}

	if orig := item.OriginalPrice; orig != nil && *orig > item.Price {
		product.HasDiscount = true
		if *orig > 0 {
			pct := int(math.Round((*orig - item.Price) / *orig * 100))
			product.DiscountPercentage = &pct
		}
	}

	if item.Shipping != nil && item.Shipping.FreeShipping != nil {
		product.HasFreeShipping = *item.Shipping.FreeShipping
	}
	product.ShippingType = classifyShipping(item.Shipping)

	return product
}

// MapItemDetail превращает ответ /items/{id} в карточку
func MapItemDetail(dto ItemDetailDTO) domain.ProductDetail {
	detail := domain.ProductDetail{
		ID:    dto.ID,
		Title: dto.Title,
		Price: dto.Price,
	}
	if len(dto.Pictures) > 0 && dto.Pictures[0].URL != nil {
		detail.Image = *dto.Pictures[0].URL
	}
	if dto.Shipping != nil && dto.Shipping.FreeShipping != nil {
		detail.HasFreeShipping = *dto.Shipping.FreeShipping
	}
	return detail
}

// classifyShipping: порядок проверок важен, бесплатная доставка всегда побеждает
func classifyShipping(shipping *ShippingDTO) domain.ShippingType {
	if shipping == nil {
		return domain.ShippingStandard
	}
	if shipping.FreeShipping != nil && *shipping.FreeShipping {
		return domain.ShippingFree
	}

	fold := cases.Fold()
	if shipping.LogisticType != nil && strings.Contains(fold.String(*shipping.LogisticType), "fulfillment") {
		return domain.ShippingFull
	}
	for _, tag := range shipping.Tags {
		folded := fold.String(tag)
		if strings.Contains(folded, "fulfillment") || strings.Contains(folded, "full") {
			return domain.ShippingFull
		}
	}
	return domain.ShippingStandard
}

// firstNonEmpty: пустая строка считается отсутствующей картинкой,
// поэтому thumbnail "" уступает secure_thumbnail
func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}
