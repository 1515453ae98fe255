package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

// CalculatorHandler считает пустые и некорректные параметры нулём.
type CalculatorHandler struct {
	logger logger.Logger
}

func NewCalculatorHandler(logger logger.Logger) *CalculatorHandler {
	return &CalculatorHandler{logger: logger}
}

// profit
//
//	@Summary	Расчёт прибыли с продажи
//	@Tags		calculator
//	@Produce	json
//	@Param		cost		query		string	false	"Себестоимость"
//	@Param		sell_price	query		string	false	"Цена продажи"
//	@Param		shipping	query		string	false	"Доставка"
//	@Param		fees		query		string	false	"Комиссия, %"
//	@Success	200			{object}	profitResponse
//	@Router		/calculator/profit [get]
func (c *CalculatorHandler) profit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := usecase.ProfitBreakdown(q.Get("cost"), q.Get("sell_price"), q.Get("shipping"), q.Get("fees"))

	respond(w, c.logger, http.StatusOK, profitResponse{
		GrossProfit:   res.GrossProfit,
		Fees:          res.Fees,
		NetProfit:     res.NetProfit,
		MarginPercent: res.MarginPercent,
	})
}

// markup
//
//	@Summary		Рекомендуемая цена
//	@Description	valid=false, если целевая маржа 100% и выше.
//	@Tags			calculator
//	@Produce		json
//	@Param			cost	query		string	false	"Себестоимость"
//	@Param			margin	query		string	false	"Целевая маржа, %"
//	@Success		200		{object}	markupResponse
//	@Router			/calculator/markup [get]
func (c *CalculatorHandler) markup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	respond(w, c.logger, http.StatusOK, toMarkupResponse(usecase.MarkupSuggestion(q.Get("cost"), q.Get("margin"))))
}
