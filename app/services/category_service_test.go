package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/app/services"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/testkit"
)

func categoriesURL() string { return config.APIBaseURL() + "/categories" }

func TestCategoryList(t *testing.T) {
	slug := "phones"
	testkit.Install(t, testkit.Stub{
		Method: "GET",
		URL:    categoriesURL(),
		JSON: []remote.CategoryRecord{
			{ID: 1, TenLoai: "Điện thoại", Slug: &slug, ThuTu: 1, AnHien: 1},
			{ID: 2, TenLoai: "Phụ kiện", ThuTu: 2},
		},
	})

	categories := services.NewCategoryService().List(context.Background())

	require.Len(t, categories, 2)
	assert.True(t, categories[0].Active)
	require.NotNil(t, categories[0].Slug)
	assert.Equal(t, "phones", *categories[0].Slug)
	assert.False(t, categories[1].Active)
	assert.Nil(t, categories[1].Slug)
}

func TestCategoryFind(t *testing.T) {
	testkit.Install(t, testkit.Stub{
		Method: "GET",
		URL:    categoriesURL() + "/4",
		JSON:   remote.CategoryRecord{ID: 4, TenLoai: "Tablet", AnHien: 1},
	})

	c := services.NewCategoryService().Find(context.Background(), 4)

	require.NotNil(t, c)
	assert.Equal(t, "Tablet", c.Name)
	assert.True(t, c.Active)
}

func TestCategoryFindCollapsesNotFound(t *testing.T) {
	testkit.Install(t) // every request 404s

	c := services.NewCategoryService().Find(context.Background(), 99)

	assert.Nil(t, c)
}

func TestCategoryCreateRejectsInvalidInput(t *testing.T) {
	mt := testkit.Install(t)

	created, errs := services.NewCategoryService().Create(context.Background(), services.CategoryInput{
		Name:  "x",
		Order: -1,
	})

	assert.Nil(t, created)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "order")
	assert.Equal(t, 0, mt.Requests())
}

// The upstream category routes are irregular: update and delete live under
// /categories/update/{id} and /categories/delete/{id}.
func TestCategoryUpdateUsesIrregularRoute(t *testing.T) {
	mt := testkit.Install(t, testkit.Stub{
		Method: "PUT",
		URL:    categoriesURL() + "/update/4",
		JSON:   remote.CategoryRecord{ID: 4, TenLoai: "Tablet", AnHien: 1},
	})

	updated, errs := services.NewCategoryService().Update(context.Background(), 4, services.CategoryInput{
		Name:   "Tablet",
		Order:  3,
		Active: true,
	})

	assert.Empty(t, errs)
	require.NotNil(t, updated)
	assert.Equal(t, "Tablet", updated.Name)
	mt.AssertAllCalled(t)
}

func TestCategoryDeleteUsesIrregularRoute(t *testing.T) {
	mt := testkit.Install(t, testkit.Stub{
		Method: "DELETE",
		URL:    categoriesURL() + "/delete/4",
	})

	assert.True(t, services.NewCategoryService().Delete(context.Background(), 4))
	mt.AssertAllCalled(t)
}
