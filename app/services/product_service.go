// Package services holds the back-office operations. Every service talks
// to the remote storefront API through pkg/fetch and collapses failures
// into safe zero results (empty slice, nil, false) so the UI layer never
// has to branch on transport errors. Failures are still logged.
package services

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/collection"
	"github.com/danghq/shopdesk/pkg/fetch"
	"github.com/danghq/shopdesk/pkg/logger"
	"github.com/danghq/shopdesk/pkg/storage"
	"github.com/danghq/shopdesk/pkg/validate"
)

// ProductInput is the validated form payload for product create/update.
type ProductInput struct {
	Name       string  `json:"name"       validate:"required,min=2,max=255"`
	Price      float64 `json:"price"      validate:"required,gte=0"`
	SalePrice  float64 `json:"salePrice"  validate:"nullable,gte=0"`
	CategoryID int     `json:"categoryId" validate:"required,gte=1"`
	Image      string  `json:"image"      validate:"nullable,url"`
	Hot        bool    `json:"hot"`
	Status     string  `json:"status"     validate:"in=In Stock,Low Stock,Out of Stock"`
}

func (in ProductInput) toModel() models.Product {
	return models.Product{
		Name:       in.Name,
		Price:      in.Price,
		SalePrice:  in.SalePrice,
		CategoryID: in.CategoryID,
		Image:      in.Image,
		Hot:        in.Hot,
		Status:     models.Status(in.Status),
	}
}

type ProductService struct {
	base string
}

func NewProductService() *ProductService {
	return &ProductService{base: config.APIBaseURL()}
}

// List fetches every product. Any failure yields an empty slice.
func (s *ProductService) List(ctx context.Context) []models.Product {
	resp, err := fetch.Get(s.base + "/products").
		Resource("products").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("products: list failed", "error", err)
		return []models.Product{}
	}
	if !resp.OK() {
		logger.Warn("products: list returned non-2xx", "status", resp.StatusCode)
		return []models.Product{}
	}

	var records []remote.ProductRecord
	if err := resp.JSON(&records); err != nil {
		logger.Warn("products: decode failed", "error", err)
		return []models.Product{}
	}
	return collection.Map(records, remote.ToProduct)
}

// Find fetches one product by id, or nil when anything goes wrong.
func (s *ProductService) Find(ctx context.Context, id int) *models.Product {
	resp, err := fetch.Get(fmt.Sprintf("%s/products/%d", s.base, id)).
		Resource("products").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("products: find failed", "id", id, "error", err)
		return nil
	}
	if !resp.OK() {
		logger.Warn("products: find returned non-2xx", "id", id, "status", resp.StatusCode)
		return nil
	}

	var record remote.ProductRecord
	if err := resp.JSON(&record); err != nil {
		logger.Warn("products: decode failed", "id", id, "error", err)
		return nil
	}
	p := remote.ToProduct(record)
	return &p
}

// Create validates the input and submits it. A non-empty error map means
// the input never left the process; a nil product with no errors means the
// API rejected or lost the request.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, map[string]string) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs
	}

	resp, err := fetch.Post(s.base+"/products").
		Resource("products").
		Body(remote.ProductPayload(in.toModel())).
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("products: create failed", "error", err)
		return nil, nil
	}
	if !resp.OK() {
		logger.Warn("products: create returned non-2xx", "status", resp.StatusCode)
		return nil, nil
	}
	return s.decodeOne(resp, "create")
}

// Update validates the input and submits it against an existing product.
func (s *ProductService) Update(ctx context.Context, id int, in ProductInput) (*models.Product, map[string]string) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs
	}

	resp, err := fetch.Put(fmt.Sprintf("%s/products/%d", s.base, id)).
		Resource("products").
		Body(remote.ProductPayload(in.toModel())).
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("products: update failed", "id", id, "error", err)
		return nil, nil
	}
	if !resp.OK() {
		logger.Warn("products: update returned non-2xx", "id", id, "status", resp.StatusCode)
		return nil, nil
	}
	return s.decodeOne(resp, "update")
}

func (s *ProductService) decodeOne(resp *fetch.Response, op string) (*models.Product, map[string]string) {
	var record remote.ProductRecord
	if err := resp.JSON(&record); err != nil {
		logger.Warn("products: decode failed", "op", op, "error", err)
		return nil, nil
	}
	p := remote.ToProduct(record)
	return &p, nil
}

// Delete removes a product. False on any failure.
func (s *ProductService) Delete(ctx context.Context, id int) bool {
	resp, err := fetch.Delete(fmt.Sprintf("%s/products/%d", s.base, id)).
		Resource("products").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("products: delete failed", "id", id, "error", err)
		return false
	}
	if !resp.OK() {
		logger.Warn("products: delete returned non-2xx", "id", id, "status", resp.StatusCode)
		return false
	}
	return true
}

// UploadImage stores a product image on the configured disk and returns
// its public URL.
func (s *ProductService) UploadImage(name string, r io.Reader) (string, error) {
	key := path.Join("products", path.Base(name))
	if err := storage.PutStream(key, r); err != nil {
		return "", fmt.Errorf("products: upload image: %w", err)
	}
	return storage.URL(key), nil
}
