// Package bkash wraps the bKash tokenized checkout API used to collect
// subscription payments.
package bkash

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/easycodingbd/hazira-backend-go/internal/config"
)

// Client calls the bKash tokenized checkout endpoints. Auth tokens are
// served from an in-process cache so a burst of payment calls does not
// turn into a burst of grant calls.
type Client struct {
	baseURL    string
	appKey     string
	appSecret  string
	username   string
	password   string
	httpClient *http.Client
	tokens     *TokenCache
}

func NewClient(cfg config.BkashConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		appKey:    cfg.AppKey,
		appSecret: cfg.AppSecret,
		username:  cfg.Username,
		password:  cfg.Password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: NewTokenCache(cfg.TokenTTL, time.Now),
	}
}

// APIError represents a bKash API failure
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bkash API error [%d]: %s", e.StatusCode, e.Message)
}

type grantTokenResponse struct {
	IDToken       string `json:"id_token"`
	TokenType     string `json:"token_type"`
	StatusMessage string `json:"statusMessage"`
}

// Token returns a valid grant token, reusing the cached one while it is
// fresh and calling the grant endpoint otherwise.
func (c *Client) Token(ctx context.Context) (string, error) {
	if token, ok := c.tokens.Get(); ok {
		return token, nil
	}
	return c.grantToken(ctx)
}

func (c *Client) grantToken(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"app_key":    c.appKey,
		"app_secret": c.appSecret,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal grant request: %w", err)
	}

	endpoint := c.baseURL + "/tokenized/checkout/token/grant"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build grant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("username", c.username)
	req.Header.Set("password", c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("grant token request failed: %w", err)
	}
	defer resp.Body.Close()

	var body grantTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode grant response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || body.IDToken == "" {
		return "", &APIError{StatusCode: resp.StatusCode, Message: body.StatusMessage}
	}

	c.tokens.Set(body.IDToken)
	return body.IDToken, nil
}

type createPaymentRequest struct {
	Mode                  string `json:"mode"`
	PayerReference        string `json:"payerReference"`
	CallbackURL           string `json:"callbackURL"`
	Amount                string `json:"amount"`
	Currency              string `json:"currency"`
	Intent                string `json:"intent"`
	MerchantInvoiceNumber string `json:"merchantInvoiceNumber"`
}

// PaymentResult carries the fields the subscription flow needs out of a
// create or execute call.
type PaymentResult struct {
	PaymentID  string `json:"paymentID"`
	BkashURL   string `json:"bkashURL"`
	TrxID      string `json:"trxID"`
	Status     string `json:"transactionStatus"`
	StatusCode string `json:"statusCode"`
	Message    string `json:"statusMessage"`
}

// CreatePayment opens a tokenized checkout session and returns the URL
// the payer is redirected to.
func (c *Client) CreatePayment(ctx context.Context, amount, invoiceNumber, callbackURL string) (*PaymentResult, error) {
	payload := createPaymentRequest{
		Mode:                  "0011",
		PayerReference:        invoiceNumber,
		CallbackURL:           callbackURL,
		Amount:                amount,
		Currency:              "BDT",
		Intent:                "sale",
		MerchantInvoiceNumber: invoiceNumber,
	}
	var result PaymentResult
	if err := c.post(ctx, "/tokenized/checkout/create", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExecutePayment completes a checkout session after the payer approves it.
func (c *Client) ExecutePayment(ctx context.Context, paymentID string) (*PaymentResult, error) {
	payload := map[string]string{"paymentID": paymentID}
	var result PaymentResult
	if err := c.post(ctx, "/tokenized/checkout/execute", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out *PaymentResult) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)
	req.Header.Set("X-App-Key", c.appKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bkash request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode bkash response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: out.Message}
	}
	return nil
}
