package http

import (
	"encoding/json"
	"net/http"

	"github.com/easycodingbd/hazira-backend-go/internal/domain/subscription"
	"github.com/easycodingbd/hazira-backend-go/internal/handler/http/response"
	"github.com/easycodingbd/hazira-backend-go/internal/pkg/jwt"
)

type SubscriptionHandler struct {
	service subscription.SubscriptionService
}

func NewSubscriptionHandler(service subscription.SubscriptionService) SubscriptionHandler {
	return SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) Plans(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPlans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscription.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.Subscribe(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Checkout created", resp)
}

func (h *SubscriptionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req subscription.ExecutePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.CompanyID = jwt.CompanyIDFromContext(r.Context())

	resp, err := h.service.ExecutePayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Subscription activated", resp)
}

func (h *SubscriptionHandler) Active(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetActiveSubscription(r.Context(), jwt.CompanyIDFromContext(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
