package screen

import (
	"net/url"
	"strings"
)

// Маршруты экранов каталога
const (
	RouteList   = "commerce_list"
	RouteDetail = "commerce_detail"
)

const routeItemIDParam = "itemId"

type Route struct {
	Name   string
	ItemID string
}

// DetailRoute строит маршрут карточки: commerce_detail?itemId=MLA1
func DetailRoute(itemID string) string {
	q := url.Values{}
	q.Set(routeItemIDParam, itemID)
	return RouteDetail + "?" + q.Encode()
}

// ParseRoute разбирает маршрут; если itemId не найден, ItemID пустой
func ParseRoute(raw string) Route {
	name, query, _ := strings.Cut(raw, "?")
	route := Route{Name: name}
	if query == "" {
		return route
	}

	if values, err := url.ParseQuery(query); err == nil {
		route.ItemID = values.Get(routeItemIDParam)
		return route
	}

	// кривой query: ищем itemId=... вручную
	for _, param := range strings.Split(query, "&") {
		key, value, ok := strings.Cut(param, "=")
		if ok && key == routeItemIDParam {
			route.ItemID = value
			break
		}
	}
	return route
}
