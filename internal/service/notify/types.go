package notify

import (
	"context"

	"github.com/canada-ca/tracker-sub005/internal/domain"
	"github.com/canada-ca/tracker-sub005/internal/service/i18n"
)

// AuthEmailRequest sends the sign-in code by email.
type AuthEmailRequest struct {
	User domain.Recipient
}

// AuthTextMsgRequest sends the sign-in code by text message. TemplateID
// overrides the configured template when set.
type AuthTextMsgRequest struct {
	User       domain.Recipient
	TemplateID string
}

// TfaTextMsgRequest sends a code to confirm a phone number, which is not
// necessarily the one stored on the user yet.
type TfaTextMsgRequest struct {
	User        domain.Recipient
	PhoneNumber string
	TemplateID  string
}

type VerificationEmailRequest struct {
	User       domain.Recipient
	VerifyURL  string
	TemplateID string
}

type PasswordResetEmailRequest struct {
	User       domain.Recipient
	ResetURL   string
	TemplateID string
}

type OrgInviteEmailRequest struct {
	User       domain.Recipient
	OrgName    string
	TemplateID string
}

type OrgInviteCreateAccountRequest struct {
	User              domain.Recipient
	OrgName           string
	CreateAccountLink string
	TemplateID        string
}

// Dispatcher sends one transactional notification per call. Every method
// makes exactly one client call; a failure is logged with its cause and
// returned as an *errs.DeliveryError holding only tr's rendering of the
// operation's message.
//
//go:generate mockgen -source=./types.go -destination=./mocks/dispatcher.mock.go -package=notifymocks Dispatcher
type Dispatcher interface {
	SendAuthEmail(ctx context.Context, tr i18n.Translator, req AuthEmailRequest) error
	SendAuthTextMsg(ctx context.Context, tr i18n.Translator, req AuthTextMsgRequest) error
	SendTfaTextMsg(ctx context.Context, tr i18n.Translator, req TfaTextMsgRequest) error
	SendVerificationEmail(ctx context.Context, tr i18n.Translator, req VerificationEmailRequest) error
	SendPasswordResetEmail(ctx context.Context, tr i18n.Translator, req PasswordResetEmailRequest) error
	SendOrgInviteEmail(ctx context.Context, tr i18n.Translator, req OrgInviteEmailRequest) error
	SendOrgInviteCreateAccount(ctx context.Context, tr i18n.Translator, req OrgInviteCreateAccountRequest) error
}
