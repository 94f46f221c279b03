package gcnotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
)

const (
	DefaultBaseURL = "https://api.notification.canada.ca"
	DefaultTimeout = 10 * time.Second

	emailPath = "/v2/notifications/email"
	smsPath   = "/v2/notifications/sms"
)

var _ provider.Client = (*Client)(nil)

// Client talks to the GC Notify REST API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type Option func(c *Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: gcnotify api key is empty", errs.ErrProviderNotConfigured)
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type emailRequest struct {
	EmailAddress    string         `json:"email_address"`
	TemplateID      string         `json:"template_id"`
	Personalisation map[string]any `json:"personalisation,omitempty"`
	Reference       string         `json:"reference,omitempty"`
}

type smsRequest struct {
	PhoneNumber     string         `json:"phone_number"`
	TemplateID      string         `json:"template_id"`
	Personalisation map[string]any `json:"personalisation,omitempty"`
	Reference       string         `json:"reference,omitempty"`
}

type notificationResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
}

// APIError is a non-2xx answer from GC Notify.
type APIError struct {
	StatusCode int        `json:"status_code"`
	Errors     []APIFault `json:"errors"`
}

type APIFault struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, f := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Error, f.Message))
	}
	if len(msgs) == 0 {
		return fmt.Sprintf("gcnotify: status %d", e.StatusCode)
	}
	return fmt.Sprintf("gcnotify: status %d: %s", e.StatusCode, strings.Join(msgs, "; "))
}

func (c *Client) SendEmail(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	msg := domain.Message{Channel: domain.ChannelEmail, TemplateID: templateID, Address: address}
	if err := msg.Validate(); err != nil {
		return domain.Receipt{}, err
	}
	return c.post(ctx, emailPath, emailRequest{
		EmailAddress:    address,
		TemplateID:      templateID,
		Personalisation: opts.Personalisation,
		Reference:       opts.Reference,
	})
}

func (c *Client) SendSMS(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	msg := domain.Message{Channel: domain.ChannelSMS, TemplateID: templateID, Address: address}
	if err := msg.Validate(); err != nil {
		return domain.Receipt{}, err
	}
	return c.post(ctx, smsPath, smsRequest{
		PhoneNumber:     address,
		TemplateID:      templateID,
		Personalisation: opts.Personalisation,
		Reference:       opts.Reference,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) (domain.Receipt, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "ApiKey-v1 "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{}
		if json.Unmarshal(body, apiErr) != nil || apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, apiErr)
	}

	var out notificationResponse
	if err = json.Unmarshal(body, &out); err != nil {
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrSendFailed, err)
	}
	return domain.Receipt{
		ID:        out.ID,
		Reference: out.Reference,
		Provider:  "gcnotify",
		Status:    domain.SendStatusSucceeded,
	}, nil
}
