package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	_defaultBaseURL = "https://api.resend.com"
	_defaultTimeout = 10 * time.Second

	_maxErrorBodySize = 4 << 10
)

// ResendClient talks to the Resend transactional email API.
type ResendClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type ResendOption func(*ResendClient)

func ResendBaseURL(url string) ResendOption {
	return func(c *ResendClient) {
		c.baseURL = url
	}
}

func ResendHTTPClient(client *http.Client) ResendOption {
	return func(c *ResendClient) {
		c.http = client
	}
}

func NewResendClient(apiKey string, opts ...ResendOption) (*ResendClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("mail.NewResendClient: api key is required")
	}

	c := &ResendClient{
		apiKey:  apiKey,
		baseURL: _defaultBaseURL,
		http:    &http.Client{Timeout: _defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (c *ResendClient) Send(ctx context.Context, msg *Message) error {
	const op = "mail.ResendClient.Send"

	body, err := json.Marshal(sendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/emails",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiResp sendEmailResponse
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, _maxErrorBodySize))
		if jsonErr := json.Unmarshal(raw, &apiResp); jsonErr == nil && apiResp.Message != "" {
			return fmt.Errorf("%s: provider status %d: %s", op, resp.StatusCode, apiResp.Message)
		}
		return fmt.Errorf("%s: provider status %d", op, resp.StatusCode)
	}

	return nil
}
