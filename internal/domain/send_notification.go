package domain

// SendStatus is the outcome of a single provider call.
type SendStatus string

const (
	SendStatusSucceeded SendStatus = "SUCCEEDED"
	SendStatusFailed    SendStatus = "FAILED"
)

func (s SendStatus) String() string {
	return string(s)
}

// StatusOf maps the error returned by a provider call to a SendStatus.
func StatusOf(err error) SendStatus {
	if err != nil {
		return SendStatusFailed
	}
	return SendStatusSucceeded
}

// Receipt is what a provider hands back once it accepted a notification.
type Receipt struct {
	ID        string     `json:"id"`        // provider side notification id
	Reference string     `json:"reference"` // caller reference echoed back, if any
	Provider  string     `json:"provider"`
	Status    SendStatus `json:"status"`
}
