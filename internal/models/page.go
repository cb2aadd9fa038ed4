package models

import "strings"

// Page — относительный путь статической страницы, на которую перенаправляется клиент.
type Page string

const (
	PageLogin    Page = "pages/login.html"
	PageAdmin    Page = "pages/admin-dashboard.html"
	PageCart     Page = "pages/cart.html"
	PageSettings Page = "pages/settings.html"
	PageHome     Page = "pages/index.html"
)

// URL возвращает путь страницы относительно базового пути сайта.
func (p Page) URL(base string) string {
	if base == "" {
		base = "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + string(p)
}
