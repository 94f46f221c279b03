package routing

import (
	"context"
	"fmt"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
)

var _ provider.Client = (*Router)(nil)

// Router sends each channel through its own client.
type Router struct {
	email provider.Client
	sms   provider.Client
}

// NewRouter accepts nil for a channel that has no client configured.
func NewRouter(email, sms provider.Client) *Router {
	return &Router{email: email, sms: sms}
}

func (r *Router) SendEmail(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	if r.email == nil {
		return domain.Receipt{}, fmt.Errorf("%w: %s", errs.ErrProviderNotConfigured, domain.ChannelEmail)
	}
	return r.email.SendEmail(ctx, templateID, address, opts)
}

func (r *Router) SendSMS(ctx context.Context, templateID, address string, opts provider.SendOptions) (domain.Receipt, error) {
	if r.sms == nil {
		return domain.Receipt{}, fmt.Errorf("%w: %s", errs.ErrProviderNotConfigured, domain.ChannelSMS)
	}
	return r.sms.SendSMS(ctx, templateID, address, opts)
}
