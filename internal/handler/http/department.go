package http

import (
	"encoding/json"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/department"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type DepartmentHandler struct {
	service department.DepartmentService
}

func NewDepartmentHandler(service department.DepartmentService) DepartmentHandler {
	return DepartmentHandler{service: service}
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created", resp)
}

func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetDepartment(r.Context(), chi.URLParam(r, "id"), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListDepartments(r.Context(), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.UpdateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteDepartment(r.Context(), chi.URLParam(r, "id"), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}
