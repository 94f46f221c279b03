package domain

import (
	"fmt"

	"github.com/canada-ca/tracker-sub005/internal/errs"
)

// Kind identifies one of the dispatch operations.
type Kind string

const (
	KindAuthEmail              Kind = "auth_email"
	KindAuthTextMsg            Kind = "auth_text_msg"
	KindTfaTextMsg             Kind = "tfa_text_msg"
	KindVerificationEmail      Kind = "verification_email"
	KindPasswordResetEmail     Kind = "password_reset_email"
	KindOrgInviteEmail         Kind = "org_invite_email"
	KindOrgInviteCreateAccount Kind = "org_invite_create_account"
)

// Kinds returns every dispatch kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindAuthEmail,
		KindAuthTextMsg,
		KindTfaTextMsg,
		KindVerificationEmail,
		KindPasswordResetEmail,
		KindOrgInviteEmail,
		KindOrgInviteCreateAccount,
	}
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	for _, kind := range Kinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// Channel returns the channel every notification of this kind is sent on.
func (k Kind) Channel() Channel {
	switch k {
	case KindAuthTextMsg, KindTfaTextMsg:
		return ChannelSMS
	default:
		return ChannelEmail
	}
}

// Recipient is the caller supplied view of the user a notification is for.
// It is never stored or mutated by the dispatcher.
type Recipient struct {
	Key           string   `json:"key"`         // unique identifier, only used in diagnostics
	UserName      string   `json:"userName"`    // email address
	DisplayName   string   `json:"displayName"` // optional, email personalisation
	PhoneNumber   string   `json:"phoneNumber"` // E.164
	PreferredLang Language `json:"preferredLang"`
	TfaCode       int      `json:"tfaCode"`
}

// Message is a fully resolved notification: one template, one address and
// the placeholder substitutions the template expects.
type Message struct {
	Kind            Kind           `json:"kind"`
	Channel         Channel        `json:"channel"`
	TemplateID      string         `json:"templateId"`
	Address         string         `json:"address"`
	Personalisation map[string]any `json:"personalisation"`
}

// Validate only checks what a provider cannot work without. Placeholder
// keys are a contract between the caller and the template.
func (m Message) Validate() error {
	if !m.Channel.IsValid() {
		return fmt.Errorf("%w: Channel = %q", errs.ErrInvalidParameter, m.Channel)
	}
	if m.TemplateID == "" {
		return fmt.Errorf("%w: TemplateID = %q", errs.ErrInvalidParameter, m.TemplateID)
	}
	if m.Address == "" {
		return fmt.Errorf("%w: Address = %q", errs.ErrInvalidParameter, m.Address)
	}
	return nil
}
