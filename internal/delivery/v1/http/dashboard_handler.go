package http

import (
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

type DashboardHandler struct {
	dashboard usecase.DashboardUC
	logger    logger.Logger
}

func NewDashboardHandler(dashboard usecase.DashboardUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, logger: logger}
}

// overview
//
//	@Summary		Сводка дашборда
//	@Description	Выручка, прибыль, маржа, число заказов, 5 последних заказов и 5 товаров с наибольшей маржой.
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	dashboardResponse
//	@Router			/dashboard [get]
func (d *DashboardHandler) overview(w http.ResponseWriter, r *http.Request) {
	respond(w, d.logger, http.StatusOK, toDashboardResponse(d.dashboard.Overview(r.Context())))
}
