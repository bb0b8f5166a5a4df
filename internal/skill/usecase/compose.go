package usecase

import (
	"fmt"

	"montblanc-assistant/internal/skill"
)

// Compose builds the final response.
//
// Devices without a display get a card holding only the answer. Display
// devices get a rich template; when echoed is non-nil the template pairs the
// paced echo of the user's input (primary) with the answer (secondary),
// otherwise the answer alone is primary.
func Compose(title, text string, endSession, hasDisplay bool, echoed *string) skill.Response {
	resp := skill.Response{
		SpeechText:       text,
		ShouldEndSession: endSession,
	}

	if !hasDisplay {
		resp.Display = skill.Display{
			Kind:    skill.DisplayCard,
			Title:   title,
			Content: text,
		}
		return resp
	}

	if echoed != nil {
		secondary := text
		resp.Display = skill.Display{
			Kind:          skill.DisplayRichTemplate,
			Title:         title,
			PrimaryText:   fmt.Sprintf(speechPacing, *echoed),
			SecondaryText: &secondary,
		}
		return resp
	}

	resp.Display = skill.Display{
		Kind:        skill.DisplayRichTemplate,
		Title:       title,
		PrimaryText: text,
	}
	return resp
}
