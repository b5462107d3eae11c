package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiembanh/cartstore/internal/client"
	"github.com/tiembanh/cartstore/internal/domain"
)

func TestCatalogGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/products/P1", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"P1","name":"Bánh kem dâu","image":"/img/p1.jpg","price":50000,"category_id":"C1","count_in_stock":7}}`))
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil, func() string { return "token-123" })
	require.NoError(t, err)

	product, err := client.NewCatalog(c).GetProduct(t.Context(), "P1")
	require.NoError(t, err)

	assert.Equal(t, "P1", product.ID)
	assert.Equal(t, "Bánh kem dâu", product.Name)
	assert.Equal(t, 7, product.CountInStock)
	assert.True(t, product.Price.Equal(domain.NewVND(50_000)))
	assert.True(t, product.InStock())
}

func TestCatalogGetProduct_EmptyID(t *testing.T) {
	c, err := client.New("http://localhost:0", nil, nil)
	require.NoError(t, err)

	_, err = client.NewCatalog(c).GetProduct(t.Context(), "")
	require.EqualError(t, err, "productID is empty")
}

func TestCatalogListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"P1","price":50000,"count_in_stock":7},{"id":"P2","price":80000,"count_in_stock":0}]}`))
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil, nil)
	require.NoError(t, err)

	products, err := client.NewCatalog(c).ListProducts(t.Context())
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "P1", products[0].ID)
	assert.False(t, products[1].InStock())
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Sản phẩm không tồn tại"}`))
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil, nil)
	require.NoError(t, err)

	_, err = client.NewCatalog(c).GetProduct(t.Context(), "nope")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Sản phẩm không tồn tại", apiErr.Message)
}

func TestOrdersSubmit(t *testing.T) {
	var (
		gotIdempotencyKey string
		gotBody           map[string]any
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotIdempotencyKey = r.Header.Get(client.IdempotencyKeyHeader)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"ORD1","user_id":"U1","status":"pending","total_price":135000}}`))
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil, func() string { return "token-123" })
	require.NoError(t, err)

	draft := domain.OrderDraft{
		UserID: "U1",
		Items: []domain.CartItem{
			{
				ProductID:    "P1",
				ProductName:  "Bánh kem dâu",
				ProductImage: "/img/p1.jpg",
				UnitPrice:    domain.NewVND(50_000),
				Quantity:     2,
			},
		},
		Payment: domain.PaymentCOD,
		Shipping: domain.ShippingDetails{
			Address:    "12 Lê Lợi",
			City:       "Hồ Chí Minh",
			PostalCode: "700000",
			Country:    "VietNam",
		},
		Contact: domain.ContactDetails{
			Name:  "Ngọc Anh",
			Phone: "0901234567",
			Email: "ngocanh@example.com",
		},
	}

	order, err := client.NewOrders(c).SubmitOrder(t.Context(), draft)
	require.NoError(t, err)

	assert.Equal(t, "ORD1", order.ID)
	assert.Equal(t, "pending", order.Status)
	assert.True(t, order.Total.Equal(domain.NewVND(135_000)))

	assert.NotEmpty(t, gotIdempotencyKey)
	assert.Equal(t, "U1", gotBody["user_id"])
	assert.Equal(t, "COD", gotBody["payment_method"])

	orderItems, ok := gotBody["order_items"].([]any)
	require.True(t, ok)
	require.Len(t, orderItems, 1)
	line := orderItems[0].(map[string]any)
	assert.Equal(t, "P1", line["product_id"])
	assert.Equal(t, float64(2), line["qty"])
	assert.Equal(t, float64(50_000), line["price"])
}

func TestOrdersSubmit_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Sản phẩm đã hết hàng"}`))
	}))
	defer server.Close()

	c, err := client.New(server.URL, nil, nil)
	require.NoError(t, err)

	draft := domain.OrderDraft{
		UserID: "U1",
		Items:  []domain.CartItem{{ProductID: "P1", UnitPrice: domain.NewVND(50_000), Quantity: 1}},
	}

	_, err = client.NewOrders(c).SubmitOrder(t.Context(), draft)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Sản phẩm đã hết hàng", apiErr.Message)
}

func TestOrdersSubmit_GuardClauses(t *testing.T) {
	c, err := client.New("http://localhost:0", nil, nil)
	require.NoError(t, err)
	orders := client.NewOrders(c)

	_, err = orders.SubmitOrder(t.Context(), domain.OrderDraft{Items: []domain.CartItem{{ProductID: "P1"}}})
	require.EqualError(t, err, "userID is empty")

	_, err = orders.SubmitOrder(t.Context(), domain.OrderDraft{UserID: "U1"})
	require.EqualError(t, err, "order has no items")
}
