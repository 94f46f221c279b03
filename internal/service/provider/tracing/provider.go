package tracing

import (
	"context"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/canada-ca/tracker-sub005/internal/service/provider"

var _ provider.Client = (*Client)(nil)

// Client opens a span around every send of the wrapped client. Addresses
// are personal data and never end up on the span.
type Client struct {
	client provider.Client
	tracer trace.Tracer
	name   string
}

func (c *Client) SendEmail(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	ctx, span := c.start(ctx, "Client.SendEmail", domain.ChannelEmail, templateID)
	defer span.End()

	receipt, err := c.client.SendEmail(ctx, templateID, address, opts)
	c.finish(span, receipt, err)
	return receipt, err
}

func (c *Client) SendSMS(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	ctx, span := c.start(ctx, "Client.SendSMS", domain.ChannelSMS, templateID)
	defer span.End()

	receipt, err := c.client.SendSMS(ctx, templateID, address, opts)
	c.finish(span, receipt, err)
	return receipt, err
}

func (c *Client) start(ctx context.Context, spanName string, channel domain.Channel, templateID string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, spanName,
		trace.WithAttributes(
			attribute.String("client.name", c.name),
			attribute.String("notification.channel", channel.String()),
			attribute.String("notification.template_id", templateID),
		))
}

func (c *Client) finish(span trace.Span, receipt domain.Receipt, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.String("notification.id", receipt.ID),
		attribute.String("notification.status", receipt.Status.String()),
	)
}

// NewClient uses the global tracer provider. name is the client name,
// gcnotify, aliyun and so on.
func NewClient(client provider.Client, name string) *Client {
	return NewClientWithTracer(client, name, otel.Tracer(instrumentationName))
}

func NewClientWithTracer(client provider.Client, name string, tracer trace.Tracer) *Client {
	return &Client{
		client: client,
		name:   name,
		tracer: tracer,
	}
}
