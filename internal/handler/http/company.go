package http

import (
	"encoding/json"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/company"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
)

type CompanyHandler struct {
	service company.CompanyService
}

func NewCompanyHandler(service company.CompanyService) CompanyHandler {
	return CompanyHandler{service: service}
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req company.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateCompany(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Company created", resp)
}

func (h *CompanyHandler) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetCompany(r.Context(), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
