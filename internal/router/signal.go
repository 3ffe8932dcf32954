package router

import (
	"errors"
	"net/url"
	"strings"
)

type Action string

const (
	ActionAddToCart Action = "add-to-cart"
	ActionIncrease  Action = "increase"
	ActionDecrease  Action = "decrease"
	ActionRemove    Action = "remove"
)

var ErrMalformedSignal = errors.New("malformed signal")

// ProductDisplay is what an add-to-cart control can see of the product it
// sits in: its name, its price as displayed, and its image.
type ProductDisplay struct {
	Name      string
	PriceText string
	Image     string
}

// Signal is one user interaction carrying the declared action and the id of
// the element it originated from.
type Signal struct {
	Action  Action
	ID      string
	Product *ProductDisplay
}

// SignalFromForm reads a signal from posted form fields: action, id and, for
// add-to-cart, name, price and image.
func SignalFromForm(form url.Values) Signal {
	sig := Signal{
		Action: Action(strings.TrimSpace(form.Get("action"))),
		ID:     strings.TrimSpace(form.Get("id")),
	}
	if form.Has("name") || form.Has("price") || form.Has("image") {
		sig.Product = &ProductDisplay{
			Name:      form.Get("name"),
			PriceText: form.Get("price"),
			Image:     form.Get("image"),
		}
	}
	return sig
}
