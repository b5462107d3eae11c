package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
)

type postgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) (port.CartStorage, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	return &postgresStorage{pool: pool}, nil
}

// Save replaces the whole slot: delete then insert inside one transaction,
// so a reader never observes a half-written cart.
func (s *postgresStorage) Save(ctx context.Context, key string, items []domain.CartItem) error {
	if key == "" {
		return fmt.Errorf("cart key is empty")
	}

	_, err := withTx(ctx, s.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_key = $1`, key); err != nil {
			return zero, fmt.Errorf("tx.Exec delete: %w", err)
		}

		batch := &pgx.Batch{}
		for position, item := range items {
			batch.Queue(
				`INSERT INTO cart_items
				   (cart_key, product_id, product_name, product_image, unit_price, currency, quantity, position)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				key,
				item.ProductID,
				item.ProductName,
				item.ProductImage,
				item.UnitPrice.Amount,
				item.UnitPrice.Currency.String(),
				item.Quantity,
				position,
			)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return zero, fmt.Errorf("tx.SendBatch: %w", err)
		}
		return zero, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (s *postgresStorage) Load(ctx context.Context, key string) ([]domain.CartItem, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("cart key is empty")
	}

	rows, err := s.pool.Query(ctx,
		`SELECT product_id, product_name, product_image, unit_price, currency, quantity
		   FROM cart_items
		  WHERE cart_key = $1
		  ORDER BY position`, key)
	if err != nil {
		return nil, false, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var (
			item         domain.CartItem
			amount       decimal.Decimal
			currencyCode string
		)
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.ProductImage,
			&amount, &currencyCode, &item.Quantity); err != nil {
			return nil, false, fmt.Errorf("rows.Scan: %w", err)
		}

		unit, err := currency.ParseISO(currencyCode)
		if err != nil {
			// malformed row, treat the whole slot as "no cart"
			return nil, false, nil
		}
		item.UnitPrice = domain.Money{Amount: amount, Currency: unit}

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("rows.Err: %w", err)
	}

	if len(items) == 0 {
		return nil, false, nil
	}
	return items, true, nil
}

func (s *postgresStorage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("cart key is empty")
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_key = $1`, key); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}
	return nil
}
