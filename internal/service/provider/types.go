package provider

import (
	"context"

	"github.com/canada-ca/tracker-sub005/internal/domain"
)

// SendOptions carries everything besides the template id and the address.
type SendOptions struct {
	// Personalisation maps template placeholders to their values.
	Personalisation map[string]any
	// Reference is an optional caller reference echoed back by the provider.
	Reference string
}

// Client is the notification client capability. Implementations must be
// safe for concurrent use and must not retry on their own.
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=providermocks Client
type Client interface {
	// SendEmail sends the email template to address.
	SendEmail(ctx context.Context, templateID, address string, opts SendOptions) (domain.Receipt, error)
	// SendSMS sends the text message template to an E.164 phone number.
	SendSMS(ctx context.Context, templateID, address string, opts SendOptions) (domain.Receipt, error)
}

// Send dispatches msg on its channel.
func Send(ctx context.Context, c Client, msg domain.Message, reference string) (domain.Receipt, error) {
	opts := SendOptions{Personalisation: msg.Personalisation, Reference: reference}
	if msg.Channel == domain.ChannelSMS {
		return c.SendSMS(ctx, msg.TemplateID, msg.Address, opts)
	}
	return c.SendEmail(ctx, msg.TemplateID, msg.Address, opts)
}
