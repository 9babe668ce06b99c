package models

// Status is the derived stock state shown in the products table. It is
// never stored by the remote API — it is computed from the visibility flag
// and the condition code (see remote.ToProduct) and translated back on
// submit (see remote.ProductPayload).
type Status string

const (
	InStock    Status = "In Stock"
	LowStock   Status = "Low Stock"
	OutOfStock Status = "Out of Stock"
)

// Product is the canonical product model the UI works with.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	SalePrice     float64 `json:"salePrice"`
	CategoryID    int     `json:"categoryId"`
	Date          string  `json:"date"`
	Image         string  `json:"image"`
	Hot           bool    `json:"hot"`
	Views         int     `json:"views"`
	Status        Status  `json:"status"`
	ConditionType int     `json:"conditionType"`
}
