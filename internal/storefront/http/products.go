package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	"github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
)

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	category := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("category")))
	if category == "" {
		category = app.CategoryAll
	}

	products, err := s.catalog.ListProducts(r.Context(), category, 100)
	if err != nil {
		s.log.Error("list products failed", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}
	categories, err := s.catalog.Categories(r.Context())
	if err != nil {
		s.log.Error("list categories failed", slog.Any("err", err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, s.card(p))
	}

	toast := s.takeToast(w, r)
	store, _ := s.storeFor(w, r)

	s.renderPage(w, http.StatusOK, pageProducts, pageData{
		Title:      "Products",
		Badge:      s.render.HeaderBadge(store.Snapshot()),
		Toast:      toast,
		Products:   cards,
		Categories: categories,
		Category:   category,
		NoProducts: len(cards) == 0,
	})
}

// handleProduct is the quick view of one product, with its description and
// the same add-to-cart control as its showcase card.
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	toast := s.takeToast(w, r)
	store, _ := s.storeFor(w, r)
	badge := s.render.HeaderBadge(store.Snapshot())

	p, err := s.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		status, code := statusFromError(err)
		if status == http.StatusInternalServerError {
			s.log.Error("get product failed", slog.String("id", r.PathValue("id")), slog.Any("err", err))
		}
		if wantsJSON(r) {
			writeError(w, status, code, "product not found")
			return
		}
		if errors.Is(err, app.ErrNotFound) {
			s.renderPage(w, http.StatusNotFound, pageProduct, pageData{Title: "Product not found", Badge: badge, Toast: toast})
			return
		}
		writeError(w, status, code, "could not load product")
		return
	}

	card := s.card(p)
	s.renderPage(w, http.StatusOK, pageProduct, pageData{
		Title:   p.Name,
		Badge:   badge,
		Toast:   toast,
		Product: &card,
	})
}

func (s *Server) card(p domain.Product) productCard {
	format := s.render.Formatter()
	card := productCard{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		PriceText:   format.Money(p.Price),
	}
	if p.OnSale() {
		card.OldPrice = format.Money(p.OldPrice)
	}
	return card
}
