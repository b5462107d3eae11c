package port

import (
	"context"

	"github.com/tiembanh/cartstore/internal/domain"
)

// CartStorage is the durable per-key slot a cart is mirrored into.
// Load reports found=false for a missing or malformed record; neither is
// an error, the cart falls back to empty.
type CartStorage interface {
	Save(ctx context.Context, key string, items []domain.CartItem) error
	Load(ctx context.Context, key string) ([]domain.CartItem, bool, error)
	Remove(ctx context.Context, key string) error
}

// IdentityProvider supplies the current user identity. An empty string
// means anonymous: the cart stays in memory only.
type IdentityProvider interface {
	CurrentIdentity() string
}

// Catalog is the remote product source, used by callers to re-check stock
// before mutating the cart.
type Catalog interface {
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// OrderGateway submits a finalized order to the remote API.
type OrderGateway interface {
	SubmitOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)
}
