package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog   usecase.CatalogUC
	dashboard usecase.DashboardUC
	logger    logger.Logger
}

func NewProductHandler(catalog usecase.CatalogUC, dashboard usecase.DashboardUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, dashboard: dashboard, logger: logger}
}

// list
//
//	@Summary		Список товаров
//	@Description	Товары в порядке добавления с маржой и именем поставщика. q фильтрует по названию.
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Поиск по названию"
//	@Success		200	{array}		productResponse
//	@Router			/products [get]
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	views := p.dashboard.ListProducts(r.Context(), r.URL.Query().Get("q"))

	res := make([]productResponse, 0, len(views))
	for _, v := range views {
		res = append(res, toProductResponse(v))
	}

	respond(w, p.logger, http.StatusOK, res)
}

// create
//
//	@Summary	Создание товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		productRequest	true	"Товар"
//	@Success	201		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Router		/products [post]
func (p *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	p.upsert(w, r, "", http.StatusCreated)
}

// update
//
//	@Summary	Изменение товара
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"ID товара"
//	@Param		product	body		productRequest	true	"Товар"
//	@Success	200		{object}	productResponse
//	@Failure	400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure	404		{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [put]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	p.upsert(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

// delete
//
//	@Summary	Удаление товара
//	@Description	Заказы с этим товаром сохраняют свой снимок.
//	@Tags		products
//	@Param		id	path	string	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [delete]
func (p *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	deleteEntity(w, r, p.catalog, p.logger, domain.KindProduct)
}

func (p *ProductHandler) upsert(w http.ResponseWriter, r *http.Request, id string, successStatus int) {
	var body productRequest
	if err := decodeJSON(w, r, &body); err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	req, err := body.toUseCase()
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalog.UpsertProduct(r.Context(), req, id)
	if err != nil {
		logMutationError(p.logger, err)
		WriteError(w, err)
		return
	}

	respond(w, p.logger, successStatus, toProductResponse(p.dashboard.DescribeProduct(r.Context(), *product)))
}

func (b productRequest) toUseCase() (*usecase.UpsertProductReq, error) {
	if err := requireField("name", b.Name); err != nil {
		return nil, err
	}

	cost, err := parseMoney("cost", b.Cost)
	if err != nil {
		return nil, err
	}

	price, err := parseMoney("price", b.Price)
	if err != nil {
		return nil, err
	}

	return usecase.NewUpsertProductReq(b.Name, cost, price, b.SupplierID, domain.StockStatus(b.Stock), b.Description), nil
}
