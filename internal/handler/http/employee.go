package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/employee"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler struct {
	service employee.EmployeeService
}

func NewEmployeeHandler(service employee.EmployeeService) EmployeeHandler {
	return EmployeeHandler{service: service}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee registered", resp)
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetEmployee(r.Context(), chi.URLParam(r, "id"), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.ListEmployeeFilter{
		CompanyID:  jwt.CompanyIDFromContext(r.Context()),
		ActiveOnly: r.URL.Query().Get("active") == "true",
	}
	if dept := r.URL.Query().Get("department_id"); dept != "" {
		filter.DepartmentID = &dept
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))

	resp, err := h.service.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(resp.Total) / resp.PageSize
	if int(resp.Total)%resp.PageSize > 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, resp.Employees, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.PageSize,
		TotalItems: resp.Total,
		TotalPages: totalPages,
	})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *EmployeeHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeactivateEmployee(r.Context(), chi.URLParam(r, "id"), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deactivated", nil)
}
