package errs

// KindNotificationDeliveryFailed discriminates DeliveryError values.
const KindNotificationDeliveryFailed = "NotificationDeliveryFailed"

// DeliveryError is the only error the dispatcher returns. It carries the
// localized message for the end user and nothing about the provider
// failure behind it; that cause only goes to the operational log.
type DeliveryError struct {
	Kind    string
	Op      string
	Message string
}

func NewDeliveryError(op, message string) *DeliveryError {
	return &DeliveryError{
		Kind:    KindNotificationDeliveryFailed,
		Op:      op,
		Message: message,
	}
}

func (e *DeliveryError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrNotificationDeliveryFailed) hold without
// exposing the underlying cause through Unwrap.
func (e *DeliveryError) Is(target error) bool {
	return target == ErrNotificationDeliveryFailed
}
