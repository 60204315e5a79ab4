package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesRepeatedAdds(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)

	w := app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, float64(5), body["itemCount"])
	assert.Equal(t, float64(50), body["totalPrice"])
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)

	w := app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1"})
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, float64(1), decodeBody(t, w)["itemCount"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "nope", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, app.session().Cart.IsEmpty(), "a failed lookup must leave the cart alone")
}

func TestAddToCartCapturesCatalogPrice(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)

	w := app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	// A later catalog price edit must not change the carted row.
	app.catalog.products["1"].Price = 99

	w = app.do(t, http.MethodGet, "/v1/cart", nil)
	assert.Equal(t, float64(10), decodeBody(t, w)["totalPrice"])
}

func TestUpdateCartItemClampsToOne(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)
	app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 2})

	w := app.do(t, http.MethodPut, "/v1/cart/items/1", map[string]interface{}{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	items := body["items"].([]interface{})
	require.Len(t, items, 1, "quantity 0 must clamp, not remove")
	assert.Equal(t, float64(1), items[0].(map[string]interface{})["quantity"])
}

func TestUpdateCartItemAbsent(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPut, "/v1/cart/items/missing", map[string]interface{}{"quantity": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveCartItemAbsentIsNoOp(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)
	app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 2})

	w := app.do(t, http.MethodDelete, "/v1/cart/items/missing", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["itemCount"])
}

func TestClearCart(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)
	app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 2})

	w := app.do(t, http.MethodDelete, "/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["itemCount"])
}

func TestBuyNowLeavesCartUntouched(t *testing.T) {
	app := newTestApp(t)
	seedProduct(app, "1", 10)
	seedProduct(app, "2", 25)
	app.do(t, http.MethodPost, "/v1/cart/items", map[string]interface{}{"product_id": "1", "quantity": 2})

	w := app.do(t, http.MethodPost, "/v1/cart/buy-now", map[string]interface{}{"product_id": "2", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	staged := body["item"].(map[string]interface{})
	assert.Equal(t, "2", staged["id"])
	assert.Equal(t, float64(25), body["totalPrice"])

	// The cart keeps its unrelated rows.
	assert.Equal(t, 2, app.session().Cart.ItemCount())
}

func TestGetCartEmpty(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["itemCount"])
	assert.Equal(t, []interface{}{}, body["items"])
}
