package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
)

const (
	toastKey        = "toast"
	confirmationKey = "confirmation"

	flashMaxAge = 2 * time.Minute
)

// flash hands one-shot values to the next page load. take removes what it
// reads, so a refresh never shows the same value twice.
type flash struct {
	storage cartapp.Storage
	log     *slog.Logger
}

func (s *Server) flashFor(w http.ResponseWriter, r *http.Request) flash {
	return flash{
		storage: kv.NewCookie(w, r, kv.CookieOptions{Secure: s.opts.CookieSecure, MaxAge: flashMaxAge}),
		log:     s.log,
	}
}

func (f flash) put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode flash %s: %w", key, err)
	}
	return f.storage.SetItem(key, string(raw))
}

func (f flash) take(key string, v any) bool {
	raw, ok, err := f.storage.GetItem(key)
	if err != nil {
		f.log.Warn("unreadable flash value", slog.String("key", key), slog.Any("err", err))
		_ = f.storage.RemoveItem(key)
		return false
	}
	if !ok {
		return false
	}
	if err := f.storage.RemoveItem(key); err != nil {
		f.log.Warn("could not clear flash value", slog.String("key", key), slog.Any("err", err))
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		f.log.Warn("malformed flash value", slog.String("key", key), slog.Any("err", err))
		return false
	}
	return true
}

func (s *Server) setToast(w http.ResponseWriter, r *http.Request, msg string) {
	if err := s.flashFor(w, r).put(toastKey, msg); err != nil {
		s.log.Warn("could not set toast", slog.Any("err", err))
	}
}

// takeToast returns the pending toast, if any, and expires it.
func (s *Server) takeToast(w http.ResponseWriter, r *http.Request) string {
	var msg string
	s.flashFor(w, r).take(toastKey, &msg)
	return msg
}

// putConfirmation stores the confirmation for the page that follows the
// checkout redirect. A view too large for the cookie loses its lines.
func (s *Server) putConfirmation(w http.ResponseWriter, r *http.Request, view confirmationView) {
	f := s.flashFor(w, r)
	err := f.put(confirmationKey, view)
	if errors.Is(err, kv.ErrValueTooLarge) {
		view.Lines = nil
		err = f.put(confirmationKey, view)
	}
	if err != nil {
		s.log.Error("could not keep confirmation", slog.String("order_number", view.OrderNumber), slog.Any("err", err))
	}
}

func (s *Server) takeConfirmation(w http.ResponseWriter, r *http.Request) (confirmationView, bool) {
	var view confirmationView
	ok := s.flashFor(w, r).take(confirmationKey, &view)
	return view, ok && view.OrderNumber != ""
}

// toastNotifier collects store notifications raised while handling one request.
type toastNotifier struct {
	mu    sync.Mutex
	names []string
}

func (n *toastNotifier) ItemAdded(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.names = append(n.names, name)
}

func (n *toastNotifier) message() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.names) == 0 {
		return ""
	}
	return addedMessage(n.names[len(n.names)-1])
}

func addedMessage(name string) string {
	return fmt.Sprintf("\"%s\" added to cart!", name)
}
