package notify

import "github.com/canada-ca/tracker-sub005/internal/domain"

// DefaultAuthEmailTemplateID is the GC Notify template of the sign-in
// code email.
const DefaultAuthEmailTemplateID = "a517d99f-ddb2-4494-87e1-d5ae6ca53090"

// Templates holds the configured provider template ids. Empty values are
// not checked here; a send with an empty id fails at the provider.
type Templates struct {
	AuthEmail                string `yaml:"authEmail"`
	AuthTextMsg              string `yaml:"authTextMsg"`
	TfaTextMsg               string `yaml:"tfaTextMsg"`
	VerificationEmailEN      string `yaml:"verificationEmailEN"`
	VerificationEmailFR      string `yaml:"verificationEmailFR"`
	PasswordResetEN          string `yaml:"passwordResetEN"`
	PasswordResetFR          string `yaml:"passwordResetFR"`
	OrgInvite                string `yaml:"orgInvite"`
	OrgInviteCreateAccountEN string `yaml:"orgInviteCreateAccountEN"`
	OrgInviteCreateAccountFR string `yaml:"orgInviteCreateAccountFR"`
}

// DefaultTemplates only knows the auth email template; the others come
// from configuration.
func DefaultTemplates() Templates {
	return Templates{AuthEmail: DefaultAuthEmailTemplateID}
}

// Missing lists the names of the ids that are not set.
func (t Templates) Missing() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"authEmail", t.AuthEmail},
		{"authTextMsg", t.AuthTextMsg},
		{"tfaTextMsg", t.TfaTextMsg},
		{"verificationEmailEN", t.VerificationEmailEN},
		{"verificationEmailFR", t.VerificationEmailFR},
		{"passwordResetEN", t.PasswordResetEN},
		{"passwordResetFR", t.PasswordResetFR},
		{"orgInvite", t.OrgInvite},
		{"orgInviteCreateAccountEN", t.OrgInviteCreateAccountEN},
		{"orgInviteCreateAccountFR", t.OrgInviteCreateAccountFR},
	}
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// override returns the caller supplied id, or fallback when there is none.
func override(templateID, fallback string) string {
	if templateID != "" {
		return templateID
	}
	return fallback
}

// pick chooses between an English and French template by preference.
func pick(lang domain.Language, en, fr string) string {
	if lang.IsFrench() {
		return fr
	}
	return en
}
