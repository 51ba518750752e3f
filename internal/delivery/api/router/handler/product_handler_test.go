package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: newDiscardLogger()}), productUC
}

func TestProductHandler_ListProducts(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/v1/products?search=rice", "")

	productUC.EXPECT().ListProducts(mock.Anything, "rice").Return([]*entity.Product{{ID: "p1", Name: "Rice"}}, nil)

	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var products []*entity.Product
	decodeData(t, rec, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Rice", products[0].Name)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	c, rec := newRequest(http.MethodPost, "/api/v1/products", `{"name":"Rice","price":55.5,"quantity":0,"unit":"kg"}`)

	productUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Name == "Rice" && *in.Price == 55.5 && in.Quantity != nil && *in.Quantity == 0
		})).
		Return(&entity.Product{ID: "p1", Name: "Rice"}, nil)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestProductHandler_CreateProduct_BlankNumbersReachUsecase(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	c, rec := newRequest(http.MethodPost, "/api/v1/products", `{"name":"Rice","unit":"kg"}`)

	productUC.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Price == nil && in.Quantity == nil
		})).
		Return(nil, domainerrors.ErrProductFieldsMissing)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, domainerrors.ErrProductFieldsMissing.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrProductFieldsMissing.ErrorCode(), decodeError(t, rec).Code)
}

func TestProductHandler_CreateProduct_MalformedBody(t *testing.T) {
	h, _ := createTestProductHandler(t)
	c, rec := newRequest(http.MethodPost, "/api/v1/products", `{"name":`)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	c, rec := newRequest(http.MethodDelete, "/api/v1/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	productUC.EXPECT().DeleteProduct(mock.Anything, "p1").Return(nil)

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "has been deleted")
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	h, productUC := createTestProductHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/v1/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	productUC.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domainerrors.ErrProductNotFound)

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
