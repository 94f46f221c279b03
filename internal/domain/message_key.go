package domain

// MessageKey identifies a user facing message. The key is the English
// source text so a missing translation still reads correctly.
type MessageKey string

const (
	MsgUnableToAuthenticate     MessageKey = "Unable to authenticate. Please try again."
	MsgUnableToSendTfaText      MessageKey = "Unable to send two factor authentication message. Please try again."
	MsgUnableToSendVerification MessageKey = "Unable to send verification email. Please try again."
	MsgUnableToSendReset        MessageKey = "Unable to send password reset email. Please try again."
	MsgUnableToSendOrgInvite    MessageKey = "Unable to send org invite email. Please try again."
)

// MessageKeys returns every key the dispatcher can surface.
func MessageKeys() []MessageKey {
	return []MessageKey{
		MsgUnableToAuthenticate,
		MsgUnableToSendTfaText,
		MsgUnableToSendVerification,
		MsgUnableToSendReset,
		MsgUnableToSendOrgInvite,
	}
}
