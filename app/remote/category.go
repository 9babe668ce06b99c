package remote

import "github.com/danghq/shopdesk/app/models"

// CategoryRecord is a category as the API returns it. Slug is nullable
// upstream and stays nullable here.
type CategoryRecord struct {
	ID      int     `json:"id"`
	TenLoai string  `json:"ten_loai"`
	Slug    *string `json:"slug"`
	ThuTu   int     `json:"thu_tu"`
	AnHien  int     `json:"an_hien"`
}

// CategoryRequest is the payload sent on create and update.
type CategoryRequest struct {
	TenLoai string  `json:"ten_loai"`
	Slug    *string `json:"slug"`
	ThuTu   int     `json:"thu_tu"`
	AnHien  int     `json:"an_hien"`
}

// ToCategory maps a wire record to the canonical model.
func ToCategory(r CategoryRecord) models.Category {
	return models.Category{
		ID:     r.ID,
		Name:   r.TenLoai,
		Slug:   r.Slug,
		Order:  r.ThuTu,
		Active: r.AnHien == 1,
	}
}

// CategoryPayload maps a model back to the request shape.
func CategoryPayload(c models.Category) CategoryRequest {
	req := CategoryRequest{
		TenLoai: c.Name,
		Slug:    c.Slug,
		ThuTu:   c.Order,
	}
	if c.Active {
		req.AnHien = 1
	}
	return req
}
