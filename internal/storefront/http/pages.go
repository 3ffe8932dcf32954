package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dwikikusuma/storefront-cart/internal/projection"
)

//go:embed templates/*.gohtml
var pageFS embed.FS

const (
	pageProducts     = "products.gohtml"
	pageProduct      = "product.gohtml"
	pageCart         = "cart.gohtml"
	pageCheckout     = "checkout.gohtml"
	pageConfirmation = "confirmation.gohtml"
)

type productCard struct {
	ID          string
	Name        string
	Category    string
	Description string
	Image       string
	PriceText   string
	OldPrice    string
}

type billingForm struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Payment  string
}

type pageData struct {
	Title    string
	ShopName string
	Badge    projection.Badge
	Toast    string

	Products   []productCard
	Categories []string
	Category   string
	NoProducts bool
	Product    *productCard

	Table   projection.CartTable
	Summary projection.CheckoutSummary

	Form         billingForm
	Error        string
	MissingField string

	Confirmation *confirmationView
}

func parsePages() (map[string]*template.Template, error) {
	base, err := projection.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse projection templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{pageProducts, pageProduct, pageCart, pageCheckout, pageConfirmation} {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err = t.ParseFS(pageFS, "templates/layout.gohtml", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func (s *Server) renderPage(w http.ResponseWriter, status int, page string, data pageData) {
	t, ok := s.pages[page]
	if !ok {
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}
	data.ShopName = s.opts.ShopName

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.log.Error("render page failed", slog.String("page", page), slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
