package models

// CartItem is one row of a shopper's cart. Price is the unit price captured
// when the item was added; later catalog edits do not touch carted items.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
}

// LineTotal is the price of this row (unit price x quantity).
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
