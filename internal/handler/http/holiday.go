package http

import (
	"encoding/json"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/holiday"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler struct {
	service holiday.HolidayService
}

func NewHolidayHandler(service holiday.HolidayService) HolidayHandler {
	return HolidayHandler{service: service}
}

func (h *HolidayHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday added", resp)
}

func (h *HolidayHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteHoliday(r.Context(), chi.URLParam(r, "id"), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday removed", nil)
}

func (h *HolidayHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListHolidays(
		r.Context(),
		jwt.CompanyIDFromContext(r.Context()),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
