package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
)

type productPayload struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Image        string          `json:"image"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"category_id"`
	CountInStock int             `json:"count_in_stock"`
}

type Catalog struct {
	client *Client
	sfg    singleflight.Group // collapses concurrent lookups of one product
}

var _ port.Catalog = (*Catalog)(nil)

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

func (c *Catalog) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	if productID == "" {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	v, err, _ := c.sfg.Do(productID, func() (any, error) {
		var payload productPayload
		if err := c.client.doJSON(ctx, http.MethodGet, "/api/products/"+productID, nil, nil, &payload); err != nil {
			return nil, fmt.Errorf("doJSON: %w", err)
		}
		return mapProductToDomain(payload), nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	return v.(domain.Product), nil
}

func (c *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var payloads []productPayload
	if err := c.client.doJSON(ctx, http.MethodGet, "/api/products", nil, nil, &payloads); err != nil {
		return nil, fmt.Errorf("doJSON: %w", err)
	}

	products := make([]domain.Product, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, mapProductToDomain(payload))
	}
	return products, nil
}

func mapProductToDomain(payload productPayload) domain.Product {
	return domain.Product{
		ID:           payload.ID,
		Name:         payload.Name,
		Image:        payload.Image,
		Price:        domain.Money{Amount: payload.Price, Currency: domain.VND},
		CategoryID:   payload.CategoryID,
		CountInStock: payload.CountInStock,
	}
}
