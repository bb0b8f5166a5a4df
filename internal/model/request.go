package model

// RequestType classifies an inbound voice request.
type RequestType string

const (
	RequestTypeLaunch RequestType = "Launch"
	RequestTypeIntent RequestType = "Intent"
	RequestTypeOther  RequestType = "Other"
)

// Request is the transport-neutral form of one voice invocation.
// It is built once by a delivery adapter and never mutated afterwards.
type Request struct {
	Type       RequestType
	IntentName string
	Slots      map[string]string
	HasDisplay bool
}

// Slot returns the value of the named slot, or "" when absent.
func (r Request) Slot(name string) string {
	if r.Slots == nil {
		return ""
	}
	return r.Slots[name]
}
