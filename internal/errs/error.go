package errs

import "errors"

var (
	ErrInvalidParameter      = errors.New("invalid parameter")
	ErrSendFailed            = errors.New("notification provider send failed")
	ErrUnsupportedChannel    = errors.New("channel not supported by provider")
	ErrProviderNotConfigured = errors.New("notification provider not configured")
	ErrCircuitOpen           = errors.New("notification provider circuit breaker open")

	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)
