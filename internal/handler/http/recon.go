package http

import (
	"net/http"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/domain/recon"
	"github.com/cmlabs-hris/timerecon-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReconHandler interface {
	// Monthly reconciliation report
	GetMonthlyReconciliation(w http.ResponseWriter, r *http.Request)

	// Annual reconciliation report
	GetAnnualReconciliation(w http.ResponseWriter, r *http.Request)
}

type reconHandlerImpl struct {
	reconService recon.ReconciliationService
}

func NewReconHandler(reconService recon.ReconciliationService) ReconHandler {
	return &reconHandlerImpl{
		reconService: reconService,
	}
}

// GetMonthlyReconciliation handles GET /reconciliation/monthly/{period}
func (h *reconHandlerImpl) GetMonthlyReconciliation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := recon.MonthlyRequest{
		PeriodKey:    chi.URLParam(r, "period"),
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	result, err := h.reconService.ReconcileMonth(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAnnualReconciliation handles GET /reconciliation/annual/{year}
func (h *reconHandlerImpl) GetAnnualReconciliation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := recon.AnnualRequest{
		PeriodKey:    chi.URLParam(r, "year"),
		EmployeeCode: r.URL.Query().Get("employee_code"),
	}

	result, err := h.reconService.ReconcileYear(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
