// Command cartctl manages a cart kept in a local JSON file, using the same
// store, router, projections and checkout as the storefront.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/storefront-cart/internal/order/app"
	"github.com/dwikikusuma/storefront-cart/internal/projection"
	"github.com/dwikikusuma/storefront-cart/internal/router"
	"github.com/dwikikusuma/storefront-cart/pkg/logger"
	"github.com/spf13/pflag"
)

const usage = `usage: cartctl [--file path] [--key name] <command> [args]

commands:
  list                                   show the cart table
  summary                                show the checkout summary
  add <id> --name N --price P --image I  add one unit of a product
  inc <id>                               increase quantity
  dec <id>                               decrease quantity, removing at zero
  rm <id>                                remove the item
  clear                                  empty the cart
  checkout --fullname ... --email ... --phone ... --address ... [--payment ...]
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cli struct {
	store    *cartapp.Store
	renderer *projection.Renderer
	router   *router.Router
	shopName string
	stdout   io.Writer
	stderr   io.Writer
}

func run(args []string, stdout, stderr io.Writer) int {
	global := pflag.NewFlagSet("cartctl", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)

	file := global.StringP("file", "f", defaultFile(), "cart storage file")
	key := global.String("key", cartapp.DefaultStorageKey, "storage key holding the cart")
	locale := global.String("locale", projection.DefaultLocale, "number formatting locale")
	currency := global.String("currency", projection.DefaultCurrency, "currency label")
	shopName := global.String("shop", checkoutapp.DefaultShopName, "shop name on confirmations")
	logLevel := global.String("log-level", "warn", "log level")
	global.Usage = func() { fmt.Fprint(stderr, usage) }

	if err := global.Parse(args); err != nil {
		return 2
	}
	rest := global.Args()
	if len(rest) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	log := logger.New(logger.Options{Service: "cartctl", Env: "cli", Level: *logLevel, Output: stderr, Text: true})
	renderer := projection.NewRenderer(projection.NewFormatter(*locale, *currency))

	c := &cli{renderer: renderer, shopName: *shopName, stdout: stdout, stderr: stderr}
	c.store = cartapp.NewStore(kv.NewFile(*file),
		cartapp.WithKey(*key),
		cartapp.WithLogger(log),
		cartapp.WithNotifier(cartapp.NotifierFunc(func(name string) {
			fmt.Fprintf(stdout, "\"%s\" added to cart!\n", name)
		})),
	)
	c.router = router.New(c.store, router.ProjectorFunc(c.printCart), log)

	if err := c.exec(rest[0], rest[1:]); err != nil {
		fmt.Fprintf(stderr, "cartctl: %v\n", err)
		var missing *checkoutdomain.MissingFieldError
		if errors.As(err, &missing) || errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("bad usage")

func (c *cli) exec(cmd string, args []string) error {
	switch cmd {
	case "list":
		c.printCart(c.store.Snapshot())
		return nil
	case "summary":
		return projection.WriteCheckoutSummaryText(c.stdout, c.renderer.CheckoutSummary(c.store.Snapshot()))
	case "add":
		return c.add(args)
	case "inc":
		return c.dispatch(router.ActionIncrease, args)
	case "dec":
		return c.dispatch(router.ActionDecrease, args)
	case "rm":
		return c.dispatch(router.ActionRemove, args)
	case "clear":
		if err := c.store.Clear(); err != nil {
			return err
		}
		c.printCart(c.store.Snapshot())
		return nil
	case "checkout":
		return c.checkout(args)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) add(args []string) error {
	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	name := fs.String("name", "", "product name")
	price := fs.String("price", "", `displayed price, e.g. "Ksh 1,000"`)
	image := fs.String("image", "", "product image URL")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: add takes exactly one product id", errUsage)
	}

	applied, err := c.router.Dispatch(router.Signal{
		Action: router.ActionAddToCart,
		ID:     fs.Arg(0),
		Product: &router.ProductDisplay{
			Name:      *name,
			PriceText: *price,
			Image:     *image,
		},
	})
	if err != nil {
		return err
	}
	if !applied {
		return fmt.Errorf("%w: add needs --name, --price and --image", errUsage)
	}
	return nil
}

func (c *cli) dispatch(action router.Action, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s takes exactly one product id", errUsage, action)
	}
	applied, err := c.router.Dispatch(router.Signal{Action: action, ID: args[0]})
	if err != nil {
		return err
	}
	if !applied {
		fmt.Fprintf(c.stderr, "%s is not in the cart\n", args[0])
		c.printCart(c.store.Snapshot())
	}
	return nil
}

func (c *cli) checkout(args []string) error {
	fs := pflag.NewFlagSet("checkout", pflag.ContinueOnError)
	fs.SetOutput(c.stderr)
	var b checkoutdomain.Billing
	fs.StringVar(&b.FullName, "fullname", "", "full name")
	fs.StringVar(&b.Email, "email", "", "email")
	fs.StringVar(&b.Phone, "phone", "", "phone")
	fs.StringVar(&b.Address, "address", "", "delivery address")
	fs.StringVar(&b.Payment, "payment", "mpesa", "payment method")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	fin := checkoutapp.NewFinalizer(
		adapter.NewCartStoreReader(c.store),
		adapter.NewOrderServicePlacer(orderapp.NewService(nil, nil)),
		c.renderer.Formatter(),
		checkoutapp.WithShopName(c.shopName),
	)
	conf, err := fin.Submit(context.Background(), b)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, conf.Text)
	return nil
}

func (c *cli) printCart(cart cartdomain.Cart) {
	fmt.Fprintf(c.stdout, "Items in cart: %d\n", c.renderer.HeaderBadge(cart).Count)
	if err := projection.WriteCartTableText(c.stdout, c.renderer.CartTable(cart)); err != nil {
		fmt.Fprintf(c.stderr, "cartctl: %v\n", err)
	}
}

func defaultFile() string {
	if v := strings.TrimSpace(os.Getenv("CARTCTL_FILE")); v != "" {
		return v
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cart.json"
	}
	return filepath.Join(dir, "storefront-cart", "cart.json")
}
