package domain

// CartItem is one line in a customer's cart. Quantity on a stored line is
// always >= 1; dropping to zero removes the line instead.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart holds the ordered line items for one browsing session. Item ids are
// unique within a cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Total is recomputed from the lines on every read, never stored.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
