package features

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	cartapp "github.com/dwikikusuma/storefront-cart/internal/cart/app"
	"github.com/dwikikusuma/storefront-cart/internal/cart/domain"
	"github.com/dwikikusuma/storefront-cart/internal/cart/infra/kv"
	checkoutapp "github.com/dwikikusuma/storefront-cart/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/storefront-cart/internal/checkout/domain"
	"github.com/dwikikusuma/storefront-cart/internal/checkout/infra/adapter"
	orderapp "github.com/dwikikusuma/storefront-cart/internal/order/app"
	"github.com/dwikikusuma/storefront-cart/internal/projection"
	"github.com/dwikikusuma/storefront-cart/internal/router"

	"github.com/cucumber/godog"
)

type cartTestContext struct {
	log      *slog.Logger
	storage  *kv.Memory
	store    *cartapp.Store
	renderer *projection.Renderer
	router   *router.Router
	views    projection.Views
	toast    string
	applied  bool

	finalizer    *checkoutapp.Finalizer
	confirmation checkoutdomain.Confirmation
	err          error

	otherPage *cartapp.Store
}

func (c *cartTestContext) reset() {
	c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	c.storage = kv.NewMemory()
	c.renderer = projection.NewRenderer(projection.NewFormatter(projection.DefaultLocale, projection.DefaultCurrency))
	c.store = cartapp.NewStore(c.storage,
		cartapp.WithLogger(c.log),
		cartapp.WithNotifier(cartapp.NotifierFunc(func(name string) {
			c.toast = fmt.Sprintf("\"%s\" added to cart!", name)
		})),
	)
	c.router = router.New(c.store, router.ProjectorFunc(func(cart domain.Cart) {
		c.views = c.renderer.Project(cart)
	}), c.log)
	c.views = c.renderer.Project(c.store.Snapshot())
	c.toast = ""
	c.applied = false
	c.finalizer = checkoutapp.NewFinalizer(
		adapter.NewCartStoreReader(c.store),
		adapter.NewOrderServicePlacer(orderapp.NewService(nil, nil)),
		c.renderer.Formatter(),
		checkoutapp.WithLogger(c.log),
	)
	c.confirmation = checkoutdomain.Confirmation{}
	c.err = nil
	c.otherPage = nil
}

func (c *cartTestContext) anEmptyCart() error {
	if !c.store.Snapshot().IsEmpty() {
		return errors.New("expected an empty cart")
	}
	return nil
}

func (c *cartTestContext) theCartHoldsOfProductPriced(qty int, id, price string) error {
	for i := 0; i < qty; i++ {
		if err := c.iAddProductNamedPricedWithImage(id, "Product "+id, price, id+".jpg"); err != nil {
			return err
		}
	}
	return nil
}

func (c *cartTestContext) iAddProductNamedPricedWithImage(id, name, price, image string) error {
	return c.dispatch(router.Signal{
		Action:  router.ActionAddToCart,
		ID:      id,
		Product: &router.ProductDisplay{Name: name, PriceText: price, Image: image},
	})
}

func (c *cartTestContext) iDecreaseItem(id string) error {
	return c.dispatch(router.Signal{Action: router.ActionDecrease, ID: id})
}

func (c *cartTestContext) iRemoveItem(id string) error {
	return c.dispatch(router.Signal{Action: router.ActionRemove, ID: id})
}

func (c *cartTestContext) dispatch(sig router.Signal) error {
	applied, err := c.router.Dispatch(sig)
	if err != nil {
		return err
	}
	c.applied = applied
	return nil
}

func (c *cartTestContext) anotherPageOpensTheCart() error {
	c.otherPage = cartapp.NewStore(c.storage, cartapp.WithLogger(c.log))
	return nil
}

func (c *cartTestContext) iSubmitBillingDetailsWithout(field string) error {
	b := completeBilling()
	switch field {
	case checkoutdomain.FieldFullName:
		b.FullName = ""
	case checkoutdomain.FieldEmail:
		b.Email = ""
	case checkoutdomain.FieldPhone:
		b.Phone = ""
	case checkoutdomain.FieldAddress:
		b.Address = ""
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	c.confirmation, c.err = c.finalizer.Submit(context.Background(), b)
	return nil
}

func (c *cartTestContext) iSubmitCompleteBillingDetails() error {
	c.confirmation, c.err = c.finalizer.Submit(context.Background(), completeBilling())
	return nil
}

func completeBilling() checkoutdomain.Billing {
	return checkoutdomain.Billing{
		FullName: "Amina Hassan",
		Email:    "amina@example.com",
		Phone:    "0712345678",
		Address:  "Habaswein, Wajir",
		Payment:  "mpesa",
	}
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if got := len(c.store.Snapshot().Items); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) itemHasQuantity(id string, qty int) error {
	it, ok := c.store.Snapshot().Find(id)
	if !ok {
		return fmt.Errorf("item %s not in cart", id)
	}
	if it.Quantity != qty {
		return fmt.Errorf("expected quantity %d for %s, got %d", qty, id, it.Quantity)
	}
	return nil
}

func (c *cartTestContext) theBadgeShows(n int) error {
	if c.views.Badge.Count != n {
		return fmt.Errorf("expected badge %d, got %d", n, c.views.Badge.Count)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total string) error {
	if c.views.Table.Total != total {
		return fmt.Errorf("expected table total %q, got %q", total, c.views.Table.Total)
	}
	if c.views.Summary.Total != total {
		return fmt.Errorf("expected summary total %q, got %q", total, c.views.Summary.Total)
	}
	return nil
}

func (c *cartTestContext) theToastReads(msg string) error {
	msg = strings.ReplaceAll(msg, `\"`, `"`)
	if c.toast != msg {
		return fmt.Errorf("expected toast %q, got %q", msg, c.toast)
	}
	return nil
}

func (c *cartTestContext) theCartIsEmpty() error {
	if !c.store.Snapshot().IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d items", len(c.store.Snapshot().Items))
	}
	return nil
}

func (c *cartTestContext) theEmptyCartPlaceholderIsShown() error {
	if !c.views.Table.PlaceholderVisible || c.views.Table.TableVisible {
		return errors.New("expected placeholder visible and table hidden")
	}
	return nil
}

func (c *cartTestContext) orderSubmissionIsDisabled() error {
	if !c.views.Summary.SubmitDisabled {
		return errors.New("expected submission to be disabled")
	}
	return nil
}

func (c *cartTestContext) theSignalIsIgnored() error {
	if c.applied {
		return errors.New("expected signal to be ignored")
	}
	return nil
}

func (c *cartTestContext) thatPageShowsABadgeOf(n int) error {
	if c.otherPage == nil {
		return errors.New("no other page opened")
	}
	if got := c.renderer.HeaderBadge(c.otherPage.Snapshot()).Count; got != n {
		return fmt.Errorf("expected other page badge %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) checkoutFailsWithAMissingField(field string) error {
	var missing *checkoutdomain.MissingFieldError
	if !errors.As(c.err, &missing) {
		return fmt.Errorf("expected missing field error, got %v", c.err)
	}
	if missing.Field != field {
		return fmt.Errorf("expected missing %q, got %q", field, missing.Field)
	}
	return nil
}

func (c *cartTestContext) checkoutIsStillEditing() error {
	if s := c.finalizer.State(); s != checkoutdomain.StateEditing {
		return fmt.Errorf("expected state %s, got %s", checkoutdomain.StateEditing, s)
	}
	return nil
}

func (c *cartTestContext) theOrderIsConfirmedWithTotal(total string) error {
	if c.err != nil {
		return fmt.Errorf("expected confirmation but got error: %v", c.err)
	}
	if c.finalizer.State() != checkoutdomain.StateConfirmed {
		return errors.New("expected confirmed state")
	}
	if !strings.Contains(c.confirmation.Text, "Total: "+total) {
		return fmt.Errorf("confirmation text missing total %q:\n%s", total, c.confirmation.Text)
	}
	return nil
}

func (c *cartTestContext) theStoredCartIs(raw string) error {
	got, ok, err := c.storage.GetItem(cartapp.DefaultStorageKey)
	if err != nil {
		return err
	}
	if !ok || got != raw {
		return fmt.Errorf("expected stored cart %q, got %q (present=%v)", raw, got, ok)
	}
	return nil
}

func (c *cartTestContext) submittingAgainFailsBecauseTheOrderIsAlreadyConfirmed() error {
	_, err := c.finalizer.Submit(context.Background(), completeBilling())
	if !errors.Is(err, checkoutdomain.ErrAlreadyConfirmed) {
		return fmt.Errorf("expected ErrAlreadyConfirmed, got %v", err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^the cart holds (\d+) of product "([^"]*)" priced "([^"]*)"$`, tc.theCartHoldsOfProductPriced)

	// When steps
	ctx.Step(`^I add product "([^"]*)" named "([^"]*)" priced "([^"]*)" with image "([^"]*)"$`, tc.iAddProductNamedPricedWithImage)
	ctx.Step(`^I decrease item "([^"]*)"$`, tc.iDecreaseItem)
	ctx.Step(`^I remove item "([^"]*)"$`, tc.iRemoveItem)
	ctx.Step(`^another page opens the cart$`, tc.anotherPageOpensTheCart)
	ctx.Step(`^I submit billing details without "([^"]*)"$`, tc.iSubmitBillingDetailsWithout)
	ctx.Step(`^I submit complete billing details$`, tc.iSubmitCompleteBillingDetails)

	// Then steps
	ctx.Step(`^the cart has (\d+) line items?$`, tc.theCartHasLineItems)
	ctx.Step(`^item "([^"]*)" has quantity (\d+)$`, tc.itemHasQuantity)
	ctx.Step(`^the badge shows (\d+)$`, tc.theBadgeShows)
	ctx.Step(`^the cart total is "([^"]*)"$`, tc.theCartTotalIs)
	ctx.Step(`^the toast reads "(.*)"$`, tc.theToastReads)
	ctx.Step(`^the cart is empty$`, tc.theCartIsEmpty)
	ctx.Step(`^the empty-cart placeholder is shown$`, tc.theEmptyCartPlaceholderIsShown)
	ctx.Step(`^order submission is disabled$`, tc.orderSubmissionIsDisabled)
	ctx.Step(`^the signal is ignored$`, tc.theSignalIsIgnored)
	ctx.Step(`^that page shows a badge of (\d+)$`, tc.thatPageShowsABadgeOf)
	ctx.Step(`^checkout fails with a missing "([^"]*)" field$`, tc.checkoutFailsWithAMissingField)
	ctx.Step(`^checkout is still editing$`, tc.checkoutIsStillEditing)
	ctx.Step(`^the order is confirmed with total "([^"]*)"$`, tc.theOrderIsConfirmedWithTotal)
	ctx.Step(`^the stored cart is "([^"]*)"$`, tc.theStoredCartIs)
	ctx.Step(`^submitting again fails because the order is already confirmed$`, tc.submittingAgainFailsBecauseTheOrderIsAlreadyConfirmed)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
