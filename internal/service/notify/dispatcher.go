package notify

import (
	"context"
	"fmt"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/errs"
	"github.com/canada-ca/tracker-sub005/internal/service/i18n"
	"github.com/canada-ca/tracker-sub005/internal/service/provider"
	"github.com/gotomicro/ego/core/elog"
)

var _ Dispatcher = (*dispatcher)(nil)

type dispatcher struct {
	client    provider.Client
	templates Templates
	logger    *elog.Component
}

// NewDispatcher builds a Dispatcher around an already configured client.
func NewDispatcher(client provider.Client, templates Templates, logger *elog.Component) Dispatcher {
	return &dispatcher{
		client:    client,
		templates: templates,
		logger:    logger,
	}
}

// operation describes how a failed send is reported.
type operation struct {
	kind domain.Kind
	desc string
	key  domain.MessageKey
}

var (
	opAuthEmail = operation{
		kind: domain.KindAuthEmail,
		desc: "authentication code via email",
		key:  domain.MsgUnableToAuthenticate,
	}
	opAuthTextMsg = operation{
		kind: domain.KindAuthTextMsg,
		desc: "authentication code via text",
		key:  domain.MsgUnableToAuthenticate,
	}
	opTfaTextMsg = operation{
		kind: domain.KindTfaTextMsg,
		desc: "two factor authentication message",
		key:  domain.MsgUnableToSendTfaText,
	}
	opVerificationEmail = operation{
		kind: domain.KindVerificationEmail,
		desc: "verification email",
		key:  domain.MsgUnableToSendVerification,
	}
	opPasswordResetEmail = operation{
		kind: domain.KindPasswordResetEmail,
		desc: "password reset email",
		key:  domain.MsgUnableToSendReset,
	}
	opOrgInviteEmail = operation{
		kind: domain.KindOrgInviteEmail,
		desc: "org invite email",
		key:  domain.MsgUnableToSendOrgInvite,
	}
	opOrgInviteCreateAccount = operation{
		kind: domain.KindOrgInviteCreateAccount,
		desc: "org invite create account email",
		key:  domain.MsgUnableToSendOrgInvite,
	}
)

func (d *dispatcher) SendAuthEmail(ctx context.Context, tr i18n.Translator, req AuthEmailRequest) error {
	return d.send(ctx, tr, opAuthEmail, req.User.Key, domain.Message{
		TemplateID: d.templates.AuthEmail,
		Address:    req.User.UserName,
		Personalisation: map[string]any{
			"user":     req.User.DisplayName,
			"tfa_code": req.User.TfaCode,
		},
	})
}

func (d *dispatcher) SendAuthTextMsg(ctx context.Context, tr i18n.Translator, req AuthTextMsgRequest) error {
	return d.send(ctx, tr, opAuthTextMsg, req.User.Key, domain.Message{
		TemplateID: override(req.TemplateID, d.templates.AuthTextMsg),
		Address:    req.User.PhoneNumber,
		Personalisation: map[string]any{
			"tfa_code": req.User.TfaCode,
		},
	})
}

func (d *dispatcher) SendTfaTextMsg(ctx context.Context, tr i18n.Translator, req TfaTextMsgRequest) error {
	return d.send(ctx, tr, opTfaTextMsg, req.User.Key, domain.Message{
		TemplateID: override(req.TemplateID, d.templates.TfaTextMsg),
		Address:    req.PhoneNumber,
		Personalisation: map[string]any{
			"verify_code": req.User.TfaCode,
		},
	})
}

func (d *dispatcher) SendVerificationEmail(ctx context.Context, tr i18n.Translator, req VerificationEmailRequest) error {
	fallback := pick(req.User.PreferredLang, d.templates.VerificationEmailEN, d.templates.VerificationEmailFR)
	return d.send(ctx, tr, opVerificationEmail, req.User.Key, domain.Message{
		TemplateID: override(req.TemplateID, fallback),
		Address:    req.User.UserName,
		Personalisation: map[string]any{
			"user":             req.User.DisplayName,
			"verify_email_url": req.VerifyURL,
		},
	})
}

func (d *dispatcher) SendPasswordResetEmail(ctx context.Context, tr i18n.Translator, req PasswordResetEmailRequest) error {
	fallback := pick(req.User.PreferredLang, d.templates.PasswordResetEN, d.templates.PasswordResetFR)
	return d.send(ctx, tr, opPasswordResetEmail, req.User.Key, domain.Message{
		TemplateID: override(req.TemplateID, fallback),
		Address:    req.User.UserName,
		Personalisation: map[string]any{
			"user":               req.User.DisplayName,
			"password_reset_url": req.ResetURL,
		},
	})
}

func (d *dispatcher) SendOrgInviteEmail(ctx context.Context, tr i18n.Translator, req OrgInviteEmailRequest) error {
	return d.send(ctx, tr, opOrgInviteEmail, req.User.Key, domain.Message{
		TemplateID: override(req.TemplateID, d.templates.OrgInvite),
		Address:    req.User.UserName,
		Personalisation: map[string]any{
			"display_name":      req.User.DisplayName,
			"organization_name": req.OrgName,
		},
	})
}

func (d *dispatcher) SendOrgInviteCreateAccount(ctx context.Context, tr i18n.Translator, req OrgInviteCreateAccountRequest) error {
	fallback := pick(req.User.PreferredLang, d.templates.OrgInviteCreateAccountEN, d.templates.OrgInviteCreateAccountFR)
	return d.send(ctx, tr, opOrgInviteCreateAccount, req.User.Key, domain.Message{
		TemplateID: override(req.TemplateID, fallback),
		Address:    req.User.UserName,
		Personalisation: map[string]any{
			"create_account_link": req.CreateAccountLink,
			"display_name":        req.User.DisplayName,
			"organization_name":   req.OrgName,
		},
	})
}

// send makes the single client call of an operation. The cause of a
// failure is logged and never returned.
func (d *dispatcher) send(ctx context.Context, tr i18n.Translator, op operation, userKey string, msg domain.Message) error {
	msg.Kind = op.kind
	msg.Channel = op.kind.Channel()

	_, err := provider.Send(ctx, d.client, msg, "")
	if err == nil {
		return nil
	}

	d.logger.Error(fmt.Sprintf("Error occurred when sending %s for %s: %s", op.desc, userKey, err),
		elog.String("op", op.kind.String()),
		elog.String("user_key", userKey),
		elog.FieldErr(err),
	)
	return errs.NewDeliveryError(op.kind.String(), tr.T(op.key))
}
