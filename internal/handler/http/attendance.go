package http

import (
	"encoding/json"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/attendance"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler struct {
	service attendance.AttendanceService
}

func NewAttendanceHandler(service attendance.AttendanceService) AttendanceHandler {
	return AttendanceHandler{service: service}
}

// Sync triggers an on-demand pull from the company's terminals.
func (h *AttendanceHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req attendance.SyncRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.SyncDevices(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Push receives a real-time webhook batch from a terminal. Terminals
// carry no user token; the company comes from the push URL they are
// configured with.
func (h *AttendanceHandler) Push(w http.ResponseWriter, r *http.Request) {
	var req attendance.PushBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = chi.URLParam(r, "companyID")

	if err := h.service.IngestPush(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Events ingested", nil)
}

// ManualPunch records a punch the terminal missed.
func (h *AttendanceHandler) ManualPunch(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	if err := h.service.RecordManualPunch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch recorded", nil)
}

// Day returns one employee's reconciled record for a single day.
func (h *AttendanceHandler) Day(w http.ResponseWriter, r *http.Request) {
	req := attendance.DayRequest{
		CompanyID:  jwt.CompanyIDFromContext(r.Context()),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	resp, err := h.service.GetDay(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// CorrectDay replaces the stored punches of one employee's day with an
// admin-supplied In/Out pair.
func (h *AttendanceHandler) CorrectDay(w http.ResponseWriter, r *http.Request) {
	var req attendance.CorrectDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	if err := h.service.CorrectDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Day corrected", nil)
}

// DeleteDay removes the stored punches of one employee's day.
func (h *AttendanceHandler) DeleteDay(w http.ResponseWriter, r *http.Request) {
	req := attendance.DayRequest{
		CompanyID:  jwt.CompanyIDFromContext(r.Context()),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Date:       r.URL.Query().Get("date"),
	}

	if err := h.service.DeleteDay(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Day punches removed", nil)
}

// Summary returns the reconciled attendance of one employee over a
// date range.
func (h *AttendanceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	req := attendance.SummaryRequest{
		CompanyID:  jwt.CompanyIDFromContext(r.Context()),
		EmployeeID: r.URL.Query().Get("employee_id"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}

	resp, err := h.service.GetSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
