package http

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
	catalogdomain "github.com/dwikikusuma/storefront-cart/internal/catalog/domain"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	"github.com/dwikikusuma/storefront-cart/internal/projection"
)

// Catalog is the catalog surface needed by the showcase and detail pages.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (catalogdomain.Product, error)
	ListProducts(ctx context.Context, category string, limit int) ([]catalogdomain.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type Options struct {
	StorageKey   string
	CookieSecure bool
	ShopName     string
}

type Server struct {
	catalog Catalog
	orders  checkoutapp.OrderPlacer
	render  *projection.Renderer
	pages   map[string]*template.Template
	opts    Options
	log     *slog.Logger
}

func NewServer(catalog Catalog, orders checkoutapp.OrderPlacer, render *projection.Renderer, opts Options, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.StorageKey == "" {
		opts.StorageKey = cartapp.DefaultStorageKey
	}
	if opts.ShopName == "" {
		opts.ShopName = checkoutapp.DefaultShopName
	}

	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	return &Server{
		catalog: catalog,
		orders:  orders,
		render:  render,
		pages:   pages,
		opts:    opts,
		log:     log,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", HealthHandler)
	mux.HandleFunc("GET /readyz", HealthHandler)

	mux.HandleFunc("GET /{$}", s.handleProducts)
	mux.HandleFunc("GET /products", s.handleProducts)
	mux.HandleFunc("GET /products/{id}", s.handleProduct)
	mux.HandleFunc("GET /cart", s.handleCartPage)
	mux.HandleFunc("GET /cart/views", s.handleCartViews)
	mux.HandleFunc("POST /cart/actions", s.handleCartAction)
	mux.HandleFunc("GET /checkout", s.handleCheckoutPage)
	mux.HandleFunc("POST /checkout", s.handleCheckoutSubmit)
	mux.HandleFunc("GET /checkout/confirmation", s.handleConfirmationPage)
	mux.Handle("/", NotFoundHandler())

	return RequestLogger(mux, s.log)
}

// storeFor builds the cart store of one request, backed by the client's
// cookie, the way each page builds its own store from local storage.
func (s *Server) storeFor(w http.ResponseWriter, r *http.Request) (*cartapp.Store, *toastNotifier) {
	toasts := &toastNotifier{}
	storage := kv.NewCookie(w, r, kv.CookieOptions{Secure: s.opts.CookieSecure})
	store := cartapp.NewStore(storage,
		cartapp.WithKey(s.opts.StorageKey),
		cartapp.WithNotifier(toasts),
		cartapp.WithLogger(s.log),
	)
	return store, toasts
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// safeReturn keeps redirects on this site.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/cart"
	}
	return target
}
