package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// defaultRating подставляется, если рейтинг не передан.
const defaultRating = domain.MaxRating

type SupplierHandler struct {
	catalog   usecase.CatalogUC
	dashboard usecase.DashboardUC
	logger    logger.Logger
}

func NewSupplierHandler(catalog usecase.CatalogUC, dashboard usecase.DashboardUC, logger logger.Logger) *SupplierHandler {
	return &SupplierHandler{catalog: catalog, dashboard: dashboard, logger: logger}
}

// list
//
//	@Summary		Список поставщиков
//	@Description	Поставщики с количеством товаров. q ищет по имени и email.
//	@Tags			suppliers
//	@Produce		json
//	@Param			q	query	string	false	"Поиск"
//	@Success		200	{array}	supplierResponse
//	@Router			/suppliers [get]
func (s *SupplierHandler) list(w http.ResponseWriter, r *http.Request) {
	views := s.dashboard.ListSuppliers(r.Context(), r.URL.Query().Get("q"))

	res := make([]supplierResponse, 0, len(views))
	for _, v := range views {
		res = append(res, toSupplierResponse(v))
	}

	respond(w, s.logger, http.StatusOK, res)
}

// create
//
//	@Summary	Создание поставщика
//	@Tags		suppliers
//	@Accept		json
//	@Produce	json
//	@Param		supplier	body		supplierRequest	true	"Поставщик"
//	@Success	201			{object}	supplierResponse
//	@Failure	400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/suppliers [post]
func (s *SupplierHandler) create(w http.ResponseWriter, r *http.Request) {
	s.upsert(w, r, "", http.StatusCreated)
}

// update
//
//	@Summary	Изменение поставщика
//	@Tags		suppliers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string			true	"ID поставщика"
//	@Param		supplier	body		supplierRequest	true	"Поставщик"
//	@Success	200			{object}	supplierResponse
//	@Failure	404			{object}	ErrorResponse	"Поставщик не найден"
//	@Router		/suppliers/{id} [put]
func (s *SupplierHandler) update(w http.ResponseWriter, r *http.Request) {
	s.upsert(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

// delete
//
//	@Summary	Удаление поставщика
//	@Description	Товары поставщика остаются, ссылка на него становится висячей.
//	@Tags		suppliers
//	@Param		id	path	string	true	"ID поставщика"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Поставщик не найден"
//	@Router		/suppliers/{id} [delete]
func (s *SupplierHandler) delete(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, s.catalog, s.logger, domain.KindSupplier)
}

func (s *SupplierHandler) upsert(w http.ResponseWriter, r *http.Request, id string, successStatus int) {
	var body supplierRequest
	if err := decodeJSON(w, r, &body); err != nil {
		s.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	if err := requireField("name", body.Name); err != nil {
		s.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	req := &usecase.UpsertSupplierReq{
		Name:   body.Name,
		Email:  body.Email,
		Phone:  body.Phone,
		Rating: defaultRating,
		Notes:  body.Notes,
	}
	if body.Rating != nil {
		req.Rating = *body.Rating
	}
	if body.ShippingDays != nil {
		req.ShippingDays = *body.ShippingDays
	}

	supplier, err := s.catalog.UpsertSupplier(r.Context(), req, id)
	if err != nil {
		logMutationError(s.logger, err)
		WriteError(w, err)
		return
	}

	respond(w, s.logger, successStatus, toSupplierResponse(s.dashboard.DescribeSupplier(r.Context(), *supplier)))
}
