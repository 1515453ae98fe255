package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/dropflow/internal/repository/memory"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	ticks, seq := 0, 0

	catalog := usecase.NewCatalogUC(
		memory.NewStore(),
		logger.NewNop(),
		usecase.WithClock(func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Minute)
		}),
		usecase.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id_%06d", seq)
		}),
	)

	router := NewRouter(chi.NewRouter(), logger.NewNop())
	router.Init(catalog, usecase.NewDashboardUC(catalog))

	return &testAPI{t: t, handler: router.Handler()}
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func (a *testAPI) createProduct(body string) productResponse {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/products", body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[productResponse](a.t, rec)
}

func (a *testAPI) createOrder(body string) orderResponse {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/orders", body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[orderResponse](a.t, rec)
}

func TestProductHandler_Create(t *testing.T) {
	api := newTestAPI(t)

	product := api.createProduct(`{"name":"  Widget ","cost":"10","price":"25"}`)

	require.Equal(t, "id_000001", product.ID)
	require.Equal(t, "Widget", product.Name)
	require.Equal(t, 15.0, product.UnitProfit)
	require.Equal(t, 60.0, product.MarginPercent)
	require.Equal(t, "in_stock", product.Stock)
	require.Equal(t, missingRef, product.SupplierName)
}

func TestProductHandler_CreateRejected(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing price",
			body:    `{"name":"Widget","cost":"10"}`,
			message: "price: missing required fields",
		},
		{
			name:    "missing name",
			body:    `{"name":"  ","cost":"10","price":"25"}`,
			message: "name: missing required fields",
		},
		{
			name:    "negative cost",
			body:    `{"name":"Widget","cost":"-1","price":"25"}`,
			message: "cost: invalid price",
		},
		{
			name:    "three decimals",
			body:    `{"name":"Widget","cost":"10.005","price":"25"}`,
			message: "cost: price must have at most 2 decimal places",
		},
		{
			name:    "malformed json",
			body:    `{"name":`,
			message: "bad request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(http.MethodPost, "/api/v1/products", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tc.message, decode[ErrorResponse](t, rec).Message)

			list := decode[[]productResponse](t, api.do(http.MethodGet, "/api/v1/products", nil))
			require.Empty(t, list)
		})
	}
}

func TestProductHandler_UpdateUnknownID(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPut, "/api/v1/products/missing", `{"name":"Widget","cost":"10","price":"25"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_ListResolvesSupplier(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/suppliers", `{"name":"Acme","email":"sales@acme.test","shipping_days":7}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	supplier := decode[supplierResponse](t, rec)
	require.Equal(t, 5, supplier.Rating)
	require.NotNil(t, supplier.ShippingDays)
	require.Equal(t, 7, *supplier.ShippingDays)

	api.createProduct(fmt.Sprintf(`{"name":"Widget","cost":"10","price":"25","supplier_id":%q}`, supplier.ID))
	api.createProduct(`{"name":"Gadget","cost":"5","price":"6"}`)

	products := decode[[]productResponse](t, api.do(http.MethodGet, "/api/v1/products?q=widg", nil))
	require.Len(t, products, 1)
	require.Equal(t, "Acme", products[0].SupplierName)

	suppliers := decode[[]supplierResponse](t, api.do(http.MethodGet, "/api/v1/suppliers", nil))
	require.Len(t, suppliers, 1)
	require.Equal(t, 1, suppliers[0].ProductCount)

	rec = api.do(http.MethodDelete, "/api/v1/suppliers/"+supplier.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	products = decode[[]productResponse](t, api.do(http.MethodGet, "/api/v1/products?q=widget", nil))
	require.Equal(t, missingRef, products[0].SupplierName)
}

func TestOrderHandler_FlowAndDashboard(t *testing.T) {
	api := newTestAPI(t)

	product := api.createProduct(`{"name":"Widget","cost":"10","price":"25"}`)
	order := api.createOrder(fmt.Sprintf(`{"customer":"Jane","product_id":%q,"quantity":3}`, product.ID))

	require.Equal(t, "Widget", order.ProductName)
	require.Equal(t, 75.0, order.Amount)
	require.Equal(t, 45.0, order.Profit)
	require.Equal(t, "pending", order.Status)

	// Изменение цены товара не трогает уже созданный заказ.
	rec := api.do(http.MethodPut, "/api/v1/products/"+product.ID, `{"name":"Widget","cost":"10","price":"30"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	dash := decode[dashboardResponse](t, api.do(http.MethodGet, "/api/v1/dashboard", nil))
	require.Equal(t, 75.0, dash.Totals.Revenue)
	require.Equal(t, 45.0, dash.Totals.Profit)
	require.Equal(t, 60.0, dash.Totals.MarginPercent)
	require.Equal(t, 1, dash.Totals.OrderCount)
	require.Equal(t, 1, dash.Totals.PendingCount)
	require.Equal(t, 1, dash.ProductCount)
	require.Len(t, dash.RecentOrders, 1)
	require.Len(t, dash.TopProducts, 1)
	require.InDelta(t, 66.67, dash.TopProducts[0].MarginPercent, 0.01)
}

func TestOrderHandler_ListFilter(t *testing.T) {
	api := newTestAPI(t)

	product := api.createProduct(`{"name":"Widget","cost":"10","price":"25"}`)
	first := api.createOrder(fmt.Sprintf(`{"customer":"Jane","product_id":%q,"quantity":1}`, product.ID))
	second := api.createOrder(fmt.Sprintf(`{"customer":"Bob","product_id":%q,"quantity":2,"status":"shipped"}`, product.ID))

	all := decode[[]orderResponse](t, api.do(http.MethodGet, "/api/v1/orders?status=all", nil))
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)

	shipped := decode[[]orderResponse](t, api.do(http.MethodGet, "/api/v1/orders?status=shipped", nil))
	require.Len(t, shipped, 1)
	require.Equal(t, "Bob", shipped[0].Customer)

	byName := decode[[]orderResponse](t, api.do(http.MethodGet, "/api/v1/orders?q=jan", nil))
	require.Len(t, byName, 1)
	require.Equal(t, first.ID, byName[0].ID)

	rec := api.do(http.MethodGet, "/api/v1/orders?status=lost", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_CreateRejected(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/api/v1/orders", `{"customer":"Jane","quantity":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, e.ErrInvalidQuantity.Error(), decode[ErrorResponse](t, rec).Message)

	rec = api.do(http.MethodPost, "/api/v1/orders", `{"customer":"Jane"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "quantity: missing required fields", decode[ErrorResponse](t, rec).Message)

	rec = api.do(http.MethodPost, "/api/v1/orders", `{"customer":"Jane","quantity":1,"status":"lost"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "status", decode[ErrorResponse](t, rec).Field)
}

func TestOrderHandler_SetStatus(t *testing.T) {
	api := newTestAPI(t)

	product := api.createProduct(`{"name":"Widget","cost":"10","price":"25"}`)
	order := api.createOrder(fmt.Sprintf(`{"customer":"Jane","product_id":%q,"quantity":1}`, product.ID))

	rec := api.do(http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", `{"status":"delivered"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	delivered := decode[[]orderResponse](t, api.do(http.MethodGet, "/api/v1/orders?status=delivered", nil))
	require.Len(t, delivered, 1)
	require.Equal(t, "Delivered", delivered[0].StatusLabel)

	rec = api.do(http.MethodPatch, "/api/v1/orders/missing/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", `{"status":"lost"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteEntity(t *testing.T) {
	api := newTestAPI(t)

	product := api.createProduct(`{"name":"Widget","cost":"10","price":"25"}`)
	order := api.createOrder(fmt.Sprintf(`{"customer":"Jane","product_id":%q,"quantity":1}`, product.ID))

	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/v1/products/"+product.ID, nil).Code)
	require.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/v1/products/"+product.ID, nil).Code)

	// Заказ переживает удаление товара вместе со снимком.
	orders := decode[[]orderResponse](t, api.do(http.MethodGet, "/api/v1/orders", nil))
	require.Len(t, orders, 1)
	require.Equal(t, "Widget", orders[0].ProductName)

	require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/v1/orders/"+order.ID, nil).Code)
	require.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, "/api/v1/suppliers/missing", nil).Code)
}

func TestCalculatorHandler(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/api/v1/calculator/profit?cost=10&sell_price=25&shipping=2&fees=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profit := decode[profitResponse](t, rec)
	require.Equal(t, profitResponse{GrossProfit: 15, Fees: 2.5, NetProfit: 10.5, MarginPercent: 42}, profit)

	rec = api.do(http.MethodGet, "/api/v1/calculator/profit", nil)
	require.Equal(t, profitResponse{}, decode[profitResponse](t, rec))

	rec = api.do(http.MethodGet, "/api/v1/calculator/markup?cost=10&margin=50", nil)
	markup := decode[markupResponse](t, rec)
	require.True(t, markup.Valid)
	require.NotNil(t, markup.SuggestedPrice)
	require.Equal(t, 20.0, *markup.SuggestedPrice)
	require.Equal(t, 10.0, *markup.ExpectedProfit)

	rec = api.do(http.MethodGet, "/api/v1/calculator/markup?cost=10&margin=100", nil)
	require.JSONEq(t, `{"valid":false}`, rec.Body.String())

	rec = api.do(http.MethodGet, "/api/v1/calculator/markup?cost=10&margin=99.9999999999999999999", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"valid":false}`, rec.Body.String())
}

func TestCalculatorHandler_OutOfRangeInput(t *testing.T) {
	api := newTestAPI(t)

	for _, query := range []string{
		"cost=1&sell_price=1e400",
		"cost=1&sell_price=1e-400",
		"cost=1&sell_price=1e10000000&fees=1e-10000000",
	} {
		t.Run(query, func(t *testing.T) {
			rec := api.do(http.MethodGet, "/api/v1/calculator/profit?"+query, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, profitResponse{GrossProfit: -1, NetProfit: -1}, decode[profitResponse](t, rec))
		})
	}
}

func TestWriteSuccess_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	err := WriteSuccess(rec, http.StatusOK, profitResponse{GrossProfit: math.Inf(1)})
	require.Error(t, err)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, e.ErrInternalServerError.Error(), decode[ErrorResponse](t, rec).Message)
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
		field   string
	}{
		{
			name:    "validation",
			err:     e.Wrap("CatalogUseCase.UpsertProduct", e.NewValidationError("price", "must be a finite number")),
			code:    http.StatusBadRequest,
			message: e.NewValidationError("price", "must be a finite number").Error(),
			field:   "price",
		},
		{
			name:    "not found",
			err:     e.Wrap("CatalogUseCase.UpsertOrder", e.Wrap("order x", e.ErrNotFound)),
			code:    http.StatusNotFound,
			message: e.ErrNotFound.Error(),
		},
		{
			name:    "missing field keeps field name",
			err:     e.Wrap("price", e.ErrMissingFields),
			code:    http.StatusBadRequest,
			message: "price: missing required fields",
		},
		{
			name:    "unknown kind",
			err:     e.Wrap("widgets", e.ErrUnknownEntityKind),
			code:    http.StatusBadRequest,
			message: e.ErrStatusBadRequest.Error(),
		},
		{
			name:    "storage failure is hidden",
			err:     e.Wrap("Store.Save", errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: e.ErrInternalServerError.Error(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := ToHTTPResponse(tc.err)
			require.Equal(t, tc.code, resp.Code)
			require.Equal(t, tc.message, resp.Message)
			require.Equal(t, tc.field, resp.Field)
		})
	}
}
