// Package checkout holds the caller-side policies around the cart store:
// the stock guard that clamps mutations against live stock, and the order
// submission flow. The store itself never talks to the network; anything
// async happens here first, and the store is only mutated afterwards.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/tiembanh/cartstore/internal/cart"
	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrNotSignedIn = errors.New("not signed in")
)

// InsufficientStockError tells the UI the maximum purchasable quantity.
type InsufficientStockError struct {
	ProductID string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("only %d of product %s in stock", e.Available, e.ProductID)
}

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Guard is the single stock enforcement point. It re-checks live stock
// immediately before every add/update and leaves the store untouched when
// the check fails or the lookup errors.
type Guard struct {
	catalog port.Catalog
	store   *cart.Store
}

func NewGuard(catalog port.Catalog, store *cart.Store) *Guard {
	return &Guard{catalog: catalog, store: store}
}

func (g *Guard) AddItem(ctx context.Context, item domain.CartItem) error {
	product, err := g.catalog.GetProduct(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}

	have := 0
	for _, existing := range g.store.Items() {
		if existing.ProductID == item.ProductID {
			have = existing.Quantity
			break
		}
	}
	if have+item.Quantity > product.CountInStock {
		return &InsufficientStockError{ProductID: item.ProductID, Available: product.CountInStock}
	}

	g.store.AddItem(ctx, item)
	return nil
}

func (g *Guard) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	// removals need no stock check
	if quantity <= 0 {
		g.store.UpdateQuantity(ctx, productID, quantity)
		return nil
	}

	product, err := g.catalog.GetProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}
	if quantity > product.CountInStock {
		return &InsufficientStockError{ProductID: productID, Available: product.CountInStock}
	}

	g.store.UpdateQuantity(ctx, productID, quantity)
	return nil
}

// Checkout submits the cart as an order. On success the cart is cleared;
// on failure it is left untouched for the UI to retry.
type Checkout struct {
	store    *cart.Store
	orders   port.OrderGateway
	identity port.IdentityProvider
}

func New(store *cart.Store, orders port.OrderGateway, identity port.IdentityProvider) *Checkout {
	return &Checkout{store: store, orders: orders, identity: identity}
}

func (c *Checkout) Submit(ctx context.Context, contact domain.ContactDetails, shipping domain.ShippingDetails, payment domain.PaymentMethod) (domain.Order, error) {
	items := c.store.Items()
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	userID := c.identity.CurrentIdentity()
	if userID == "" {
		return domain.Order{}, ErrNotSignedIn
	}

	if err := validate(contact, shipping); err != nil {
		return domain.Order{}, err
	}

	if shipping.PostalCode == "" {
		shipping.PostalCode = "700000"
	}
	if shipping.Country == "" {
		shipping.Country = "VietNam"
	}
	if payment == "" {
		payment = domain.PaymentCOD
	}

	order, err := c.orders.SubmitOrder(ctx, domain.OrderDraft{
		UserID:   userID,
		Items:    items,
		Payment:  payment,
		Shipping: shipping,
		Contact:  contact,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("orders.SubmitOrder: %w", err)
	}

	c.store.Clear(ctx)
	return order, nil
}

func validate(contact domain.ContactDetails, shipping domain.ShippingDetails) error {
	switch {
	case contact.Name == "":
		return &ValidationError{Field: "customer_name"}
	case contact.Phone == "":
		return &ValidationError{Field: "customer_phone"}
	case contact.Email == "":
		return &ValidationError{Field: "customer_email"}
	case shipping.Address == "":
		return &ValidationError{Field: "shipping_address"}
	case shipping.City == "":
		return &ValidationError{Field: "shipping_city"}
	}
	return nil
}
