package models

// Category groups products. Slug is optional on the remote side and stays
// nullable here so the table can sort missing slugs after present ones.
type Category struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Slug   *string `json:"slug"`
	Order  int     `json:"order"` // display order, non-negative
	Active bool    `json:"active"`
}
