package http

import (
	"errors"
	"log/slog"
	"net/http"

	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/infra/adapter"
)

const (
	missingFieldsMessage = "Please fill in all billing fields before placing your order."
	emptyCartMessage     = "Your cart is empty."
)

type confirmationLine struct {
	Name     string `json:"n"`
	Quantity int    `json:"q"`
}

// confirmationView is what the confirmation page shows once the order is
// placed and the cart is gone.
type confirmationView struct {
	OrderNumber string             `json:"o"`
	FullName    string             `json:"f"`
	Email       string             `json:"e"`
	Phone       string             `json:"p"`
	Address     string             `json:"a"`
	Payment     string             `json:"m"`
	Lines       []confirmationLine `json:"l,omitempty"`
	Total       string             `json:"t"`
}

func newConfirmationView(conf checkoutdomain.Confirmation, total string) confirmationView {
	view := confirmationView{
		OrderNumber: conf.OrderNumber,
		FullName:    conf.Billing.FullName,
		Email:       conf.Billing.Email,
		Phone:       conf.Billing.Phone,
		Address:     conf.Billing.Address,
		Payment:     conf.Billing.Payment,
		Total:       total,
	}
	for _, l := range conf.Lines {
		view.Lines = append(view.Lines, confirmationLine{Name: l.Name, Quantity: l.Quantity})
	}
	return view
}

type confirmationResponse struct {
	OrderNumber string `json:"order_number"`
	Total       string `json:"total"`
	Text        string `json:"text"`
}

func (s *Server) handleCheckoutPage(w http.ResponseWriter, r *http.Request) {
	toast := s.takeToast(w, r)
	store, _ := s.storeFor(w, r)
	cart := store.Snapshot()

	s.renderPage(w, http.StatusOK, pageCheckout, pageData{
		Title:   "Checkout",
		Badge:   s.render.HeaderBadge(cart),
		Toast:   toast,
		Summary: s.render.CheckoutSummary(cart),
		Form:    billingForm{Payment: "mpesa"},
	})
}

func (s *Server) handleCheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid form body")
		return
	}

	form := billingForm{
		FullName: r.PostForm.Get(checkoutdomain.FieldFullName),
		Email:    r.PostForm.Get(checkoutdomain.FieldEmail),
		Phone:    r.PostForm.Get(checkoutdomain.FieldPhone),
		Address:  r.PostForm.Get(checkoutdomain.FieldAddress),
		Payment:  r.PostForm.Get(checkoutdomain.FieldPayment),
	}

	store, _ := s.storeFor(w, r)
	if s.render.CheckoutSummary(store.Snapshot()).SubmitDisabled {
		if wantsJSON(r) {
			writeError(w, http.StatusConflict, codeEmptyCart, emptyCartMessage)
			return
		}
		s.setToast(w, r, emptyCartMessage)
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	fin := checkoutapp.NewFinalizer(
		adapter.NewCartStoreReader(store),
		s.orders,
		s.render.Formatter(),
		checkoutapp.WithShopName(s.opts.ShopName),
		checkoutapp.WithLogger(s.log),
	)

	conf, err := fin.Submit(r.Context(), checkoutdomain.Billing{
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Address:  form.Address,
		Payment:  form.Payment,
	})

	var missing *checkoutdomain.MissingFieldError
	switch {
	case errors.As(err, &missing):
		if wantsJSON(r) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error: missingFieldsMessage,
				Code:  codeMissingField,
				Field: missing.Field,
			})
			return
		}
		cart := store.Snapshot()
		s.renderPage(w, http.StatusUnprocessableEntity, pageCheckout, pageData{
			Title:        "Checkout",
			Badge:        s.render.HeaderBadge(cart),
			Summary:      s.render.CheckoutSummary(cart),
			Form:         form,
			Error:        missingFieldsMessage,
			MissingField: missing.Field,
		})
		return
	case err != nil:
		s.log.Error("checkout failed", slog.Any("err", err))
		status, code := statusFromError(err)
		writeError(w, status, code, "could not place order")
		return
	}

	total := s.render.Formatter().Money(conf.Total)
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, confirmationResponse{
			OrderNumber: conf.OrderNumber,
			Total:       total,
			Text:        conf.Text,
		})
		return
	}

	s.putConfirmation(w, r, newConfirmationView(conf, total))
	http.Redirect(w, r, "/checkout/confirmation", http.StatusSeeOther)
}

func (s *Server) handleConfirmationPage(w http.ResponseWriter, r *http.Request) {
	view, ok := s.takeConfirmation(w, r)
	if !ok {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	store, _ := s.storeFor(w, r)

	s.renderPage(w, http.StatusOK, pageConfirmation, pageData{
		Title:        "Order Confirmed",
		Badge:        s.render.HeaderBadge(store.Snapshot()),
		Confirmation: &view,
	})
}
