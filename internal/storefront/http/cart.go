package http

import (
	"errors"
	"log/slog"
	"net/http"

	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
	"github.com/dwikikusuma/storefront-cart/internal/projection"
	"github.com/dwikikusuma/storefront-cart/internal/router"
)

const (
	cartFullMessage   = "Your cart is full. Remove an item before adding more."
	cartFailedMessage = "Could not update your cart. Please try again."
)

type actionResponse struct {
	Applied bool             `json:"applied"`
	Toast   string           `json:"toast,omitempty"`
	Views   projection.Views `json:"views"`
}

func (s *Server) handleCartPage(w http.ResponseWriter, r *http.Request) {
	toast := s.takeToast(w, r)
	store, _ := s.storeFor(w, r)
	cart := store.Snapshot()

	s.renderPage(w, http.StatusOK, pageCart, pageData{
		Title: "Your Cart",
		Badge: s.render.HeaderBadge(cart),
		Toast: toast,
		Table: s.render.CartTable(cart),
	})
}

func (s *Server) handleCartViews(w http.ResponseWriter, r *http.Request) {
	store, _ := s.storeFor(w, r)
	writeJSON(w, http.StatusOK, s.render.Project(store.Snapshot()))
}

// handleCartAction is the one entry point for every cart control on every
// page; the router decides what the posted signal means.
func (s *Server) handleCartAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid form body")
		return
	}

	sig := router.SignalFromForm(r.PostForm)
	store, toasts := s.storeFor(w, r)

	var views projection.Views
	rt := router.New(store, router.ProjectorFunc(func(c cartdomain.Cart) {
		views = s.render.Project(c)
	}), s.log)

	applied, err := rt.Dispatch(sig)
	if err != nil {
		s.log.Error("cart action failed",
			slog.String("action", string(sig.Action)),
			slog.String("id", sig.ID),
			slog.Any("err", err))
		if wantsJSON(r) {
			status, code := statusFromError(err)
			writeError(w, status, code, "could not update cart")
			return
		}
		s.setToast(w, r, actionFailedMessage(err))
		http.Redirect(w, r, safeReturn(r.PostForm.Get("return_to")), http.StatusSeeOther)
		return
	}
	if !applied {
		views = s.render.Project(store.Snapshot())
	}

	toast := toasts.message()
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, actionResponse{Applied: applied, Toast: toast, Views: views})
		return
	}

	if toast != "" {
		s.setToast(w, r, toast)
	}
	http.Redirect(w, r, safeReturn(r.PostForm.Get("return_to")), http.StatusSeeOther)
}

func actionFailedMessage(err error) string {
	if errors.Is(err, kv.ErrValueTooLarge) {
		return cartFullMessage
	}
	return cartFailedMessage
}
