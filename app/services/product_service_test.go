package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/app/services"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/testkit"
)

func productsURL() string { return config.APIBaseURL() + "/products" }

func TestProductList(t *testing.T) {
	testkit.Install(t, testkit.Stub{
		Method: "GET",
		URL:    productsURL(),
		JSON: []remote.ProductRecord{
			{ID: 1, TenSP: "Apple Watch", Gia: 12000000, AnHien: 1},
			{ID: 2, TenSP: "iPhone 13", Gia: 20000000, AnHien: 1, TinhChat: 2},
			{ID: 3, TenSP: "Nokia 3310", Gia: 500000, AnHien: 0},
		},
	})

	products := services.NewProductService().List(context.Background())

	require.Len(t, products, 3)
	assert.Equal(t, models.InStock, products[0].Status)
	assert.Equal(t, models.LowStock, products[1].Status)
	assert.Equal(t, models.OutOfStock, products[2].Status)
}

func TestProductListCollapsesServerError(t *testing.T) {
	testkit.Install(t, testkit.Stub{
		Method: "GET",
		URL:    productsURL(),
		Status: 500,
		Body:   "boom",
	})

	products := services.NewProductService().List(context.Background())

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductListCollapsesBadPayload(t *testing.T) {
	testkit.Install(t, testkit.Stub{
		Method: "GET",
		URL:    productsURL(),
		Body:   "<html>not json</html>",
	})

	products := services.NewProductService().List(context.Background())

	assert.Empty(t, products)
}

func TestProductFind(t *testing.T) {
	testkit.Install(t, testkit.Stub{
		Method: "GET",
		URL:    productsURL() + "/7",
		JSON:   remote.ProductRecord{ID: 7, TenSP: "Galaxy S9", AnHien: 1},
	})

	p := services.NewProductService().Find(context.Background(), 7)

	require.NotNil(t, p)
	assert.Equal(t, "Galaxy S9", p.Name)
}

func TestProductFindCollapsesNotFound(t *testing.T) {
	testkit.Install(t) // every request 404s

	p := services.NewProductService().Find(context.Background(), 99)

	assert.Nil(t, p)
}

func TestProductCreateRejectsInvalidInput(t *testing.T) {
	mt := testkit.Install(t)

	created, errs := services.NewProductService().Create(context.Background(), services.ProductInput{
		Name:   "",
		Price:  -5,
		Status: string(models.InStock),
	})

	assert.Nil(t, created)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "price")
	assert.Equal(t, 0, mt.Requests()) // nothing left the process
}

func TestProductCreateSubmitsTranslatedPayload(t *testing.T) {
	mt := testkit.Install(t, testkit.Stub{
		Method: "POST",
		URL:    productsURL(),
		JSON:   remote.ProductRecord{ID: 10, TenSP: "Pixel 8", AnHien: 0},
	})

	created, errs := services.NewProductService().Create(context.Background(), services.ProductInput{
		Name:       "Pixel 8",
		Price:      15000000,
		CategoryID: 2,
		Status:     string(models.OutOfStock),
	})

	assert.Empty(t, errs)
	require.NotNil(t, created)
	assert.Equal(t, 10, created.ID)
	assert.Equal(t, models.OutOfStock, created.Status)
	mt.AssertAllCalled(t)
}

func TestProductDeleteReportsFailure(t *testing.T) {
	testkit.Install(t, testkit.Stub{
		Method: "DELETE",
		URL:    productsURL() + "/4",
		Status: 500,
	})

	ok := services.NewProductService().Delete(context.Background(), 4)

	assert.False(t, ok)
}

func TestCategoryUpdateUsesIrregularRoute2(t *testing.T) {
	mt := testkit.Install(t, testkit.Stub{
		Method: "PUT",
		URL:    config.APIBaseURL() + "/categories/update/3",
		JSON:   remote.CategoryRecord{ID: 3},
	})

	updated, errs := services.NewCategoryService().Update(context.Background(), 3, services.CategoryInput{
		Name: "Tablets",
	})

	assert.Empty(t, errs)
	require.NotNil(t, updated)
	assert.Equal(t, 3, updated.ID)
	mt.AssertAllCalled(t)
}

func TestCategoryDeleteUsesIrregularRoute2(t *testing.T) {
	mt := testkit.Install(t, testkit.Stub{
		Method: "DELETE",
		URL:    config.APIBaseURL() + "/categories/delete/3",
	})

	assert.True(t, services.NewCategoryService().Delete(context.Background(), 3))
	mt.AssertAllCalled(t)
}
