package alexa

import "encoding/json"

// Wire constants of the voice-platform protocol.
const (
	Version = "1.0"

	RequestTypeLaunch = "LaunchRequest"
	RequestTypeIntent = "IntentRequest"

	SpeechTypePlainText = "PlainText"
	CardTypeSimple      = "Simple"
	DirectiveDisplay    = "Display"
	TemplateBody1       = "BodyTemplate1"
	TextTypeRich        = "RichText"

	interfaceDisplay = "Display"
)

// RequestEnvelope is the inbound voice-platform invocation.
type RequestEnvelope struct {
	Version string   `json:"version,omitempty"`
	Session *Session `json:"session,omitempty"`
	Context Context  `json:"context"`
	Request *Request `json:"request"`
}

type Session struct {
	New       bool   `json:"new"`
	SessionID string `json:"sessionId"`
}

type Context struct {
	System System `json:"System"`
}

type System struct {
	Device Device `json:"device"`
}

// Device lists the interfaces the device supports. Only key presence
// matters, so values are kept raw.
type Device struct {
	DeviceID            string                     `json:"deviceId,omitempty"`
	SupportedInterfaces map[string]json.RawMessage `json:"supportedInterfaces,omitempty"`
}

type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId,omitempty"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// ResponseEnvelope is the outbound voice-platform answer.
type ResponseEnvelope struct {
	Version  string `json:"version"`
	Response Body   `json:"response"`
}

type Body struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Card             *Card        `json:"card,omitempty"`
	Directives       []Directive  `json:"directives,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Directive struct {
	Type     string   `json:"type"`
	Template Template `json:"template"`
}

type Template struct {
	Type        string      `json:"type"`
	Title       string      `json:"title"`
	TextContent TextContent `json:"textContent"`
}

type TextContent struct {
	PrimaryText   TextField  `json:"primaryText"`
	SecondaryText *TextField `json:"secondaryText,omitempty"`
}

type TextField struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
