package breaker

import (
	"context"
	"errors"
	"fmt"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"github.com/go-kratos/aegis/circuitbreaker"
)

var _ provider.Client = (*Client)(nil)

// Client rejects sends while the breaker is open. A rejected send is
// returned to the caller as a failure; nothing is queued or retried.
type Client struct {
	client  provider.Client
	breaker circuitbreaker.CircuitBreaker
}

func NewClient(client provider.Client, breaker circuitbreaker.CircuitBreaker) *Client {
	return &Client{client: client, breaker: breaker}
}

func (c *Client) SendEmail(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	return c.do(func() (domain.Receipt, error) {
		return c.client.SendEmail(ctx, templateID, address, opts)
	})
}

func (c *Client) SendSMS(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	return c.do(func() (domain.Receipt, error) {
		return c.client.SendSMS(ctx, templateID, address, opts)
	})
}

func (c *Client) do(send func() (domain.Receipt, error)) (domain.Receipt, error) {
	if err := c.breaker.Allow(); err != nil {
		c.breaker.MarkFailed()
		return domain.Receipt{}, fmt.Errorf("%w: %w", errs.ErrCircuitOpen, err)
	}
	receipt, err := send()
	if err != nil && !callerFault(err) {
		c.breaker.MarkFailed()
		return receipt, err
	}
	c.breaker.MarkSuccess()
	return receipt, err
}

// callerFault reports errors caused by the request rather than the provider.
func callerFault(err error) bool {
	return errors.Is(err, errs.ErrInvalidParameter) || errors.Is(err, errs.ErrUnsupportedChannel)
}
