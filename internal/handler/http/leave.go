package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/leave"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler struct {
	service leave.LeaveService
}

func NewLeaveHandler(service leave.LeaveService) LeaveHandler {
	return LeaveHandler{service: service}
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.CreateLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", resp)
}

func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *LeaveHandler) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	req := leave.DecideLeaveRequest{
		ID:        chi.URLParam(r, "id"),
		CompanyID: jwt.CompanyIDFromContext(r.Context()),
		DecidedBy: jwt.UserIDFromContext(r.Context()),
		Approve:   approve,
	}

	resp, err := h.service.DecideLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.ListLeaveFilter{
		CompanyID: jwt.CompanyIDFromContext(r.Context()),
	}
	if emp := r.URL.Query().Get("employee_id"); emp != "" {
		filter.EmployeeID = &emp
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := leave.Status(status)
		filter.Status = &s
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.PageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))

	resp, err := h.service.ListLeaves(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int(resp.Total) / resp.PageSize
	if int(resp.Total)%resp.PageSize > 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, resp.Leaves, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.PageSize,
		TotalItems: resp.Total,
		TotalPages: totalPages,
	})
}
