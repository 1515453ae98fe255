package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	catalog   usecase.CatalogUC
	dashboard usecase.DashboardUC
	logger    logger.Logger
}

func NewOrderHandler(catalog usecase.CatalogUC, dashboard usecase.DashboardUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{catalog: catalog, dashboard: dashboard, logger: logger}
}

// list
//
//	@Summary		Список заказов
//	@Description	Сначала фильтр по статусу, затем поиск по покупателю, товару и ID; от новых к старым.
//	@Tags			orders
//	@Produce		json
//	@Param			status	query		string	false	"all | pending | processing | shipped | delivered"
//	@Param			q		query		string	false	"Поиск"
//	@Success		200		{array}		orderResponse
//	@Failure		400		{object}	ErrorResponse	"Неизвестный статус"
//	@Router			/orders [get]
func (o *OrderHandler) list(w http.ResponseWriter, r *http.Request) {
	filter, err := usecase.ParseOrderFilter(r.URL.Query().Get("status"))
	if err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	orders := o.dashboard.ListOrders(r.Context(), filter, r.URL.Query().Get("q"))
	respond(w, o.logger, http.StatusOK, toOrderResponses(orders))
}

// create
//
//	@Summary		Создание заказа
//	@Description	Название, цена и себестоимость копируются из товара на момент сохранения.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		orderRequest	true	"Заказ"
//	@Success		201		{object}	orderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/orders [post]
func (o *OrderHandler) create(w http.ResponseWriter, r *http.Request) {
	o.upsert(w, r, "", http.StatusCreated)
}

// update
//
//	@Summary	Изменение заказа
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"ID заказа"
//	@Param		order	body		orderRequest	true	"Заказ"
//	@Success	200		{object}	orderResponse
//	@Failure	404		{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [put]
func (o *OrderHandler) update(w http.ResponseWriter, r *http.Request) {
	o.upsert(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

// delete
//
//	@Summary	Удаление заказа
//	@Tags		orders
//	@Param		id	path	string	true	"ID заказа"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [delete]
func (o *OrderHandler) delete(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, o.catalog, o.logger, domain.KindOrder)
}

// setStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Допускается любой переход, в том числе назад.
//	@Tags			orders
//	@Accept			json
//	@Param			id		path	string			true	"ID заказа"
//	@Param			status	body	statusRequest	true	"Новый статус"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse	"Неизвестный статус"
//	@Failure		404	{object}	ErrorResponse	"Заказ не найден"
//	@Router			/orders/{id}/status [patch]
func (o *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	var body statusRequest
	if err := decodeJSON(w, r, &body); err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if err := requireField("status", body.Status); err != nil {
		WriteError(w, err)
		return
	}

	status, err := domain.ParseOrderStatus(body.Status)
	if err != nil {
		WriteError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	changed, err := o.catalog.SetOrderStatus(r.Context(), id, status)
	if err != nil {
		logMutationError(o.logger, err)
		WriteError(w, err)
		return
	}
	if !changed {
		WriteError(w, e.Wrap("order "+id, e.ErrNotFound))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (o *OrderHandler) upsert(w http.ResponseWriter, r *http.Request, id string, successStatus int) {
	var body orderRequest
	if err := decodeJSON(w, r, &body); err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	req, err := body.toUseCase()
	if err != nil {
		o.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	order, err := o.catalog.UpsertOrder(r.Context(), req, id)
	if err != nil {
		logMutationError(o.logger, err)
		WriteError(w, err)
		return
	}

	respond(w, o.logger, successStatus, toOrderResponse(*order))
}

func (b orderRequest) toUseCase() (*usecase.UpsertOrderReq, error) {
	if err := requireField("customer", b.Customer); err != nil {
		return nil, err
	}

	quantity, err := quantityFromRequest(b.Quantity)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseOrderStatus(b.Status)
	if err != nil {
		return nil, err
	}

	return usecase.NewUpsertOrderReq(b.Customer, b.Email, b.ProductID, quantity, status, b.Address), nil
}
