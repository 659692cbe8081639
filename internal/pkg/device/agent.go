package device

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// AgentClient talks to the on-premise agent bridge that sits next to the
// terminals. The agent speaks the vendor protocol on the LAN and exposes
// the history as plain JSON over HTTP.
type AgentClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAgentClient(baseURL string) *AgentClient {
	return &AgentClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type agentRecord struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type agentResponse struct {
	Records []agentRecord `json:"records"`
	Error   string        `json:"error,omitempty"`
}

func (c *AgentClient) FetchRecords(ctx context.Context, host string, port int, since time.Time) ([]Record, error) {
	query := url.Values{}
	query.Set("host", host)
	query.Set("port", fmt.Sprintf("%d", port))
	query.Set("since", since.UTC().Format(time.RFC3339))

	endpoint := fmt.Sprintf("%s/records?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build agent request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agent request failed for %s:%d: %w", host, port, err)
	}
	defer resp.Body.Close()

	var body agentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode agent response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent returned %d for %s:%d: %s", resp.StatusCode, host, port, body.Error)
	}

	records := make([]Record, 0, len(body.Records))
	for _, r := range body.Records {
		records = append(records, Record{
			DeviceUserID: r.UserID,
			Timestamp:    r.Timestamp,
		})
	}
	return records, nil
}
