package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiembanh/cartstore/internal/domain"
	"github.com/tiembanh/cartstore/internal/port"
)

type orderItemPayload struct {
	ProductID string          `json:"product_id"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
}

type orderRequest struct {
	UserID             string             `json:"user_id"`
	OrderItems         []orderItemPayload `json:"order_items"`
	PaymentMethod      string             `json:"payment_method"`
	CustomerName       string             `json:"customer_name"`
	CustomerPhone      string             `json:"customer_phone"`
	CustomerEmail      string             `json:"customer_email"`
	ShippingAddress    string             `json:"shipping_address"`
	ShippingCity       string             `json:"shipping_city"`
	ShippingPostalCode string             `json:"shipping_postal_code"`
	ShippingCountry    string             `json:"shipping_country"`
}

type orderResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type Orders struct {
	client *Client
}

var _ port.OrderGateway = (*Orders)(nil)

func NewOrders(client *Client) *Orders {
	return &Orders{client: client}
}

// SubmitOrder posts the draft once, tagged with a fresh Idempotency-Key so
// a retried request cannot double-charge. The caller decides whether to
// retry at all.
func (o *Orders) SubmitOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	if draft.UserID == "" {
		return domain.Order{}, fmt.Errorf("userID is empty")
	}
	if len(draft.Items) == 0 {
		return domain.Order{}, fmt.Errorf("order has no items")
	}

	items := make([]orderItemPayload, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, orderItemPayload{
			ProductID: item.ProductID,
			Qty:       item.Quantity,
			Price:     item.UnitPrice.Amount,
			Name:      item.ProductName,
			Image:     item.ProductImage,
		})
	}

	request := orderRequest{
		UserID:             draft.UserID,
		OrderItems:         items,
		PaymentMethod:      string(draft.Payment),
		CustomerName:       draft.Contact.Name,
		CustomerPhone:      draft.Contact.Phone,
		CustomerEmail:      draft.Contact.Email,
		ShippingAddress:    draft.Shipping.Address,
		ShippingCity:       draft.Shipping.City,
		ShippingPostalCode: draft.Shipping.PostalCode,
		ShippingCountry:    draft.Shipping.Country,
	}

	header := http.Header{}
	header.Set(IdempotencyKeyHeader, uuid.NewString())

	var response orderResponse
	if err := o.client.doJSON(ctx, http.MethodPost, "/api/orders", header, request, &response); err != nil {
		return domain.Order{}, fmt.Errorf("doJSON: %w", err)
	}

	return domain.Order{
		ID:        response.ID,
		UserID:    response.UserID,
		Status:    response.Status,
		Total:     domain.Money{Amount: response.TotalPrice, Currency: domain.VND},
		CreatedAt: response.CreatedAt,
	}, nil
}
