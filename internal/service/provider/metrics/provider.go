package metrics

import (
	"context"
	"time"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	median = 0.5
	p90    = 0.9
	p95    = 0.95
	p99    = 0.99

	medianError = 0.05
	p90Error    = 0.01
	p95Error    = 0.005
	p99Error    = 0.001

	maxAgeDuration = 5 * time.Minute
)

var _ provider.Client = (*Client)(nil)

// Client records send counts, outcomes and latency of the wrapped client.
type Client struct {
	client              provider.Client
	sendDurationSummary *prometheus.SummaryVec
	sendCounter         *prometheus.CounterVec
	sendStatusCounter   *prometheus.CounterVec
	name                string
}

func (c *Client) SendEmail(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	return c.observe(domain.ChannelEmail, func() (domain.Receipt, error) {
		return c.client.SendEmail(ctx, templateID, address, opts)
	})
}

func (c *Client) SendSMS(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	return c.observe(domain.ChannelSMS, func() (domain.Receipt, error) {
		return c.client.SendSMS(ctx, templateID, address, opts)
	})
}

func (c *Client) observe(channel domain.Channel, send func() (domain.Receipt, error)) (domain.Receipt, error) {
	startTime := time.Now()
	c.sendCounter.WithLabelValues(c.name, channel.String()).Inc()

	receipt, err := send()

	duration := time.Since(startTime).Seconds()
	status := domain.StatusOf(err).String()
	c.sendStatusCounter.WithLabelValues(c.name, channel.String(), status).Inc()
	c.sendDurationSummary.WithLabelValues(c.name, channel.String(), status).Observe(duration)

	return receipt, err
}

// NewClient wraps client and registers its collectors on reg. Collectors
// already registered under the same names are reused, so several wrapped
// clients can share one registry.
func NewClient(name string, client provider.Client, reg prometheus.Registerer) *Client {
	sendDurationSummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "notify_client_send_duration_seconds",
			Help: "Notification client send latency in seconds",
			Objectives: map[float64]float64{
				median: medianError,
				p90:    p90Error,
				p95:    p95Error,
				p99:    p99Error,
			},
			MaxAge: maxAgeDuration,
		},
		[]string{"client", "channel", "status"},
	)

	sendCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_client_send_total",
			Help: "Notifications handed to the client",
		},
		[]string{"client", "channel"},
	)

	sendStatusCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notify_client_send_status_total",
			Help: "Notification client send outcomes",
		},
		[]string{"client", "channel", "status"},
	)

	return &Client{
		client:              client,
		sendDurationSummary: register(reg, sendDurationSummary),
		sendCounter:         register(reg, sendCounter),
		sendStatusCounter:   register(reg, sendStatusCounter),
		name:                name,
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			panic(err)
		}
		existing, ok := are.ExistingCollector.(T)
		if !ok {
			panic(err)
		}
		return existing
	}
	return c
}
