package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/tiembanh/cartstore/internal/domain"
)

// cartItemRecord is the serialized line-item shape shared by the JSON
// backed adapters. There is no versioning: a record that fails to decode
// is treated as "no cart".
type cartItemRecord struct {
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Currency     string          `json:"currency,omitempty"`
	Quantity     int             `json:"quantity"`
}

func marshalItems(items []domain.CartItem) ([]byte, error) {
	records := make([]cartItemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, cartItemRecord{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			UnitPrice:    item.UnitPrice.Amount,
			Currency:     item.UnitPrice.Currency.String(),
			Quantity:     item.Quantity,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	return data, nil
}

func unmarshalItems(data []byte) ([]domain.CartItem, error) {
	var records []cartItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var items []domain.CartItem
	for _, record := range records {
		item, err := mapRecordToDomain(record)
		if err != nil {
			return nil, fmt.Errorf("mapRecordToDomain: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func mapRecordToDomain(record cartItemRecord) (domain.CartItem, error) {
	unit := domain.VND
	if record.Currency != "" {
		parsed, err := currency.ParseISO(record.Currency)
		if err != nil {
			return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", record.Currency, err)
		}
		unit = parsed
	}

	return domain.CartItem{
		ProductID:    record.ProductID,
		ProductName:  record.ProductName,
		ProductImage: record.ProductImage,
		UnitPrice:    domain.Money{Amount: record.UnitPrice, Currency: unit},
		Quantity:     record.Quantity,
	}, nil
}
