package remote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
)

func TestStatusDerivation(t *testing.T) {
	cases := []struct {
		name     string
		anHien   int
		tinhChat int
		want     models.Status
	}{
		{"hidden dominates property code", 0, 0, models.OutOfStock},
		{"hidden even when marked low", 0, 2, models.OutOfStock},
		{"visible with low code", 1, 2, models.LowStock},
		{"visible default", 1, 0, models.InStock},
		{"visible with other code", 1, 1, models.InStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := remote.ToProduct(remote.ProductRecord{AnHien: tc.anHien, TinhChat: tc.tinhChat})
			assert.Equal(t, tc.want, p.Status)
		})
	}
}

func TestToProductMapsFields(t *testing.T) {
	p := remote.ToProduct(remote.ProductRecord{
		ID:      3,
		TenSP:   "Apple Watch",
		Gia:     12000000,
		GiaKM:   9900000,
		IDLoai:  2,
		Ngay:    "2024-05-01",
		Hinh:    "watch.jpg",
		Hot:     1,
		LuotXem: 420,
		AnHien:  1,
	})

	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "Apple Watch", p.Name)
	assert.Equal(t, float64(12000000), p.Price)
	assert.Equal(t, float64(9900000), p.SalePrice)
	assert.Equal(t, 2, p.CategoryID)
	assert.Equal(t, "2024-05-01", p.Date)
	assert.Equal(t, "watch.jpg", p.Image)
	assert.True(t, p.Hot)
	assert.Equal(t, 420, p.Views)
	assert.Equal(t, models.InStock, p.Status)
}

func TestProductPayloadTranslatesStatusBack(t *testing.T) {
	cases := []struct {
		status       models.Status
		wantAnHien   int
		wantTinhChat int
	}{
		{models.InStock, 1, 0},
		{models.LowStock, 1, 2},
		{models.OutOfStock, 0, 0},
	}
	for _, tc := range cases {
		req := remote.ProductPayload(models.Product{Status: tc.status})
		assert.Equal(t, tc.wantAnHien, req.AnHien, "status %s", tc.status)
		assert.Equal(t, tc.wantTinhChat, req.TinhChat, "status %s", tc.status)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for _, status := range []models.Status{models.InStock, models.LowStock, models.OutOfStock} {
		req := remote.ProductPayload(models.Product{Status: status})
		got := remote.ToProduct(remote.ProductRecord{AnHien: req.AnHien, TinhChat: req.TinhChat})
		assert.Equal(t, status, got.Status)
	}
}

func TestProductPayloadHotFlag(t *testing.T) {
	assert.Equal(t, 1, remote.ProductPayload(models.Product{Hot: true}).Hot)
	assert.Equal(t, 0, remote.ProductPayload(models.Product{}).Hot)
}
