package domain

type Product struct {
	ID           string
	Name         string
	Image        string
	Price        Money
	CategoryID   string
	CountInStock int
}

func (p Product) InStock() bool {
	return p.CountInStock > 0
}
