package services

import (
	"context"
	"fmt"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/collection"
	"github.com/danghq/shopdesk/pkg/fetch"
	"github.com/danghq/shopdesk/pkg/logger"
	"github.com/danghq/shopdesk/pkg/validate"
)

// CategoryInput is the validated form payload for category create/update.
// Slug is optional upstream, so it stays a pointer.
type CategoryInput struct {
	Name   string  `json:"name"  validate:"required,min=2,max=100"`
	Slug   *string `json:"slug"  validate:"nullable,max=100"`
	Order  int     `json:"order" validate:"gte=0"`
	Active bool    `json:"active"`
}

func (in CategoryInput) toModel() models.Category {
	return models.Category{
		Name:   in.Name,
		Slug:   in.Slug,
		Order:  in.Order,
		Active: in.Active,
	}
}

type CategoryService struct {
	base string
}

func NewCategoryService() *CategoryService {
	return &CategoryService{base: config.APIBaseURL()}
}

// List fetches every category. Any failure yields an empty slice.
func (s *CategoryService) List(ctx context.Context) []models.Category {
	resp, err := fetch.Get(s.base + "/categories").
		Resource("categories").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("categories: list failed", "error", err)
		return []models.Category{}
	}
	if !resp.OK() {
		logger.Warn("categories: list returned non-2xx", "status", resp.StatusCode)
		return []models.Category{}
	}

	var records []remote.CategoryRecord
	if err := resp.JSON(&records); err != nil {
		logger.Warn("categories: decode failed", "error", err)
		return []models.Category{}
	}
	return collection.Map(records, remote.ToCategory)
}

// Find fetches one category by id, or nil when anything goes wrong.
func (s *CategoryService) Find(ctx context.Context, id int) *models.Category {
	resp, err := fetch.Get(fmt.Sprintf("%s/categories/%d", s.base, id)).
		Resource("categories").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("categories: find failed", "id", id, "error", err)
		return nil
	}
	if !resp.OK() {
		logger.Warn("categories: find returned non-2xx", "id", id, "status", resp.StatusCode)
		return nil
	}

	var record remote.CategoryRecord
	if err := resp.JSON(&record); err != nil {
		logger.Warn("categories: decode failed", "id", id, "error", err)
		return nil
	}
	c := remote.ToCategory(record)
	return &c
}

// Create validates and submits a new category.
func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*models.Category, map[string]string) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs
	}

	resp, err := fetch.Post(s.base+"/categories").
		Resource("categories").
		Body(remote.CategoryPayload(in.toModel())).
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("categories: create failed", "error", err)
		return nil, nil
	}
	if !resp.OK() {
		logger.Warn("categories: create returned non-2xx", "status", resp.StatusCode)
		return nil, nil
	}
	return s.decodeOne(resp, "create")
}

// Update validates and submits against an existing category. The API's
// category routes are irregular: update lives under /categories/update/{id}.
func (s *CategoryService) Update(ctx context.Context, id int, in CategoryInput) (*models.Category, map[string]string) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs
	}

	resp, err := fetch.Put(fmt.Sprintf("%s/categories/update/%d", s.base, id)).
		Resource("categories").
		Body(remote.CategoryPayload(in.toModel())).
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("categories: update failed", "id", id, "error", err)
		return nil, nil
	}
	if !resp.OK() {
		logger.Warn("categories: update returned non-2xx", "id", id, "status", resp.StatusCode)
		return nil, nil
	}
	return s.decodeOne(resp, "update")
}

func (s *CategoryService) decodeOne(resp *fetch.Response, op string) (*models.Category, map[string]string) {
	var record remote.CategoryRecord
	if err := resp.JSON(&record); err != nil {
		logger.Warn("categories: decode failed", "op", op, "error", err)
		return nil, nil
	}
	c := remote.ToCategory(record)
	return &c, nil
}

// Delete removes a category via the irregular /categories/delete/{id} route.
func (s *CategoryService) Delete(ctx context.Context, id int) bool {
	resp, err := fetch.Delete(fmt.Sprintf("%s/categories/delete/%d", s.base, id)).
		Resource("categories").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("categories: delete failed", "id", id, "error", err)
		return false
	}
	if !resp.OK() {
		logger.Warn("categories: delete returned non-2xx", "id", id, "status", resp.StatusCode)
		return false
	}
	return true
}
