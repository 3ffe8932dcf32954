package http

import (
	"encoding/json"
	"errors"
	"net/http"

	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
	catalogapp "github.com/dwikikusuma/storefront-cart/internal/catalog/app"
	checkoutdomain "github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"github.com/dwikikusuma/storefront-cart/internal/router"
)

const (
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeMalformedSignal    = "malformed_signal"
	codeItemNotFound       = "item_not_found"
	codeMissingField       = "missing_required_field"
	codeAlreadyConfirmed   = "already_confirmed"
	codeCartTooLarge       = "cart_too_large"
	codeEmptyCart          = "empty_cart"
	codeProductNotFound    = "product_not_found"
	codeInvalidInput       = "invalid_input"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// statusFromError maps cart, catalog and checkout errors to an HTTP status and a
// stable error code.
func statusFromError(err error) (int, string) {
	switch {
	case errors.Is(err, checkoutdomain.ErrMissingField):
		return http.StatusUnprocessableEntity, codeMissingField
	case errors.Is(err, checkoutdomain.ErrAlreadyConfirmed):
		return http.StatusConflict, codeAlreadyConfirmed
	case errors.Is(err, router.ErrMalformedSignal), errors.Is(err, cartdomain.ErrInvalidItem):
		return http.StatusBadRequest, codeMalformedSignal
	case errors.Is(err, cartdomain.ErrItemNotFound):
		return http.StatusNotFound, codeItemNotFound
	case errors.Is(err, kv.ErrValueTooLarge):
		return http.StatusRequestEntityTooLarge, codeCartTooLarge
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, codeProductNotFound
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, codeInvalidInput
	default:
		return http.StatusInternalServerError, codeInternalError
	}
}
