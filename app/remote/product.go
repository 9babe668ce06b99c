// Package remote defines the storefront API's wire shapes and the pure
// mapping functions between them and the canonical models. The API uses
// localized, abbreviated field names (ten_sp, gia, an_hien, ...); nothing
// outside this package should ever see them.
package remote

import "github.com/danghq/shopdesk/app/models"

// ProductRecord is a product as the API returns it.
type ProductRecord struct {
	ID        int     `json:"id"`
	TenSP     string  `json:"ten_sp"`
	Slug      string  `json:"slug"`
	Gia       float64 `json:"gia"`
	GiaKM     float64 `json:"gia_km"`
	IDLoai    int     `json:"id_loai"`
	Ngay      string  `json:"ngay"`
	Hinh      string  `json:"hinh"`
	Hot       int     `json:"hot"`
	LuotXem   int     `json:"luot_xem"`
	AnHien    int     `json:"an_hien"`
	TinhChat  int     `json:"tinh_chat"`
	MoTa      *string `json:"mo_ta"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// ProductRequest is the payload sent on create and update.
type ProductRequest struct {
	TenSP    string  `json:"ten_sp"`
	Gia      float64 `json:"gia"`
	GiaKM    float64 `json:"gia_km"`
	IDLoai   int     `json:"id_loai"`
	Hinh     string  `json:"hinh"`
	Hot      int     `json:"hot"`
	AnHien   int     `json:"an_hien"`
	TinhChat int     `json:"tinh_chat"`
}

// ToProduct maps a wire record to the canonical model.
//
// Status is derived, never stored: an_hien == 0 forces Out of Stock
// regardless of anything else; otherwise tinh_chat == 2 means Low Stock;
// otherwise In Stock.
func ToProduct(r ProductRecord) models.Product {
	var status models.Status
	switch {
	case r.AnHien == 0:
		status = models.OutOfStock
	case r.TinhChat == 2:
		status = models.LowStock
	default:
		status = models.InStock
	}

	return models.Product{
		ID:            r.ID,
		Name:          r.TenSP,
		Price:         r.Gia,
		SalePrice:     r.GiaKM,
		CategoryID:    r.IDLoai,
		Date:          r.Ngay,
		Image:         r.Hinh,
		Hot:           r.Hot == 1,
		Views:         r.LuotXem,
		Status:        status,
		ConditionType: r.TinhChat,
	}
}

// ProductPayload maps a (possibly partial) model back to the request
// shape, translating the chosen status into the two underlying codes.
// Missing numbers default to 0 and missing strings to "".
func ProductPayload(p models.Product) ProductRequest {
	req := ProductRequest{
		TenSP:  p.Name,
		Gia:    p.Price,
		GiaKM:  p.SalePrice,
		IDLoai: p.CategoryID,
		Hinh:   p.Image,
		AnHien: 1,
	}
	if p.Hot {
		req.Hot = 1
	}
	if p.Status == models.OutOfStock {
		req.AnHien = 0
	}
	if p.Status == models.LowStock {
		req.TinhChat = 2
	}
	return req
}
