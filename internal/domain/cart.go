package domain

type Cart struct {
	Key   string
	Items []CartItem
}

// CartItem snapshots product metadata at the time of adding; it is not
// re-synchronized with the catalog. ProductID is unique within a cart.
type CartItem struct {
	ProductID    string
	ProductName  string
	ProductImage string
	UnitPrice    Money
	Quantity     int
}
