package domain

// CallbackEnvelope is the unit handed to the delivery stream: one classified
// callback plus where it came from and which operation URL it arrived on.
type CallbackEnvelope struct {
	RemoteAddr string           `json:"remote_address"`
	Response   CallbackVariant  `json:"response"`
	Category   CallbackCategory `json:"category"`
}
