package http

import (
	"encoding/json"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/payroll"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
)

type PayrollHandler struct {
	service payroll.PayrollService
}

func NewPayrollHandler(service payroll.PayrollService) PayrollHandler {
	return PayrollHandler{service: service}
}

func (h *PayrollHandler) SetSalary(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	if err := h.service.SetSalary(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary configuration saved", nil)
}

func (h *PayrollHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.GeneratePayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll generated", resp)
}

func (h *PayrollHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPayroll(
		r.Context(),
		jwt.CompanyIDFromContext(r.Context()),
		r.URL.Query().Get("month"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
