package domain

import "time"

type PaymentMethod string

// Payment method values are fixed by the orders API.
const (
	PaymentCOD          PaymentMethod = "COD"
	PaymentBankTransfer PaymentMethod = "Chuyển khoản"
)

type ShippingDetails struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

type ContactDetails struct {
	Name  string
	Phone string
	Email string
}

// OrderDraft is the cart snapshot plus checkout form data submitted to the
// orders API.
type OrderDraft struct {
	UserID   string
	Items    []CartItem
	Payment  PaymentMethod
	Shipping ShippingDetails
	Contact  ContactDetails
}

type Order struct {
	ID        string
	UserID    string
	Status    string
	Total     Money
	CreatedAt time.Time
}
