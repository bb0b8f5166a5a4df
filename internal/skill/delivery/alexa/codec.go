package alexa

import (
	"encoding/json"
	"fmt"

	"montblanc-assistant/internal/model"
	"montblanc-assistant/internal/skill"
)

// Decode parses a JSON envelope. A body that is not JSON or carries no
// request object is reported as skill.ErrMalformedPayload.
func Decode(data []byte) (model.Request, error) {
	var env RequestEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return model.Request{}, fmt.Errorf("%w: %w", skill.ErrMalformedPayload, err)
	}
	if env.Request == nil {
		return model.Request{}, fmt.Errorf("%w: missing request", skill.ErrMalformedPayload)
	}
	return ToRequest(env), nil
}

// ToRequest converts an already parsed envelope.
func ToRequest(env RequestEnvelope) model.Request {
	req := model.Request{
		Type:       model.RequestTypeOther,
		HasDisplay: hasDisplay(env.Context.System.Device),
	}
	if env.Request == nil {
		return req
	}

	switch env.Request.Type {
	case RequestTypeLaunch:
		req.Type = model.RequestTypeLaunch
	case RequestTypeIntent:
		req.Type = model.RequestTypeIntent
	}

	if intent := env.Request.Intent; intent != nil {
		req.IntentName = intent.Name
		if len(intent.Slots) > 0 {
			req.Slots = make(map[string]string, len(intent.Slots))
			for name, slot := range intent.Slots {
				req.Slots[name] = slot.Value
			}
		}
	}
	return req
}

func hasDisplay(d Device) bool {
	_, ok := d.SupportedInterfaces[interfaceDisplay]
	return ok
}

// Encode renders a Response as the platform envelope.
func Encode(resp skill.Response) ResponseEnvelope {
	env := ResponseEnvelope{
		Version: Version,
		Response: Body{
			OutputSpeech: OutputSpeech{
				Type: SpeechTypePlainText,
				Text: resp.SpeechText,
			},
			ShouldEndSession: resp.ShouldEndSession,
		},
	}

	d := resp.Display
	switch d.Kind {
	case skill.DisplayCard:
		env.Response.Card = &Card{
			Type:    CardTypeSimple,
			Title:   d.Title,
			Content: d.Content,
		}
	case skill.DisplayRichTemplate:
		content := TextContent{
			PrimaryText: TextField{Type: TextTypeRich, Text: d.PrimaryText},
		}
		if d.SecondaryText != nil {
			content.SecondaryText = &TextField{Type: TextTypeRich, Text: *d.SecondaryText}
		}
		env.Response.Directives = []Directive{{
			Type: DirectiveDisplay,
			Template: Template{
				Type:        TemplateBody1,
				Title:       d.Title,
				TextContent: content,
			},
		}}
	}
	return env
}
