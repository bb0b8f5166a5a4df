package usecase

import (
	"strings"

	"montblanc-assistant/internal/model"
	"montblanc-assistant/internal/skill"
)

// Resolve maps a request to the action the skill takes. It is pure.
func Resolve(req model.Request) skill.Action {
	switch req.Type {
	case model.RequestTypeLaunch:
		return skill.Action{Kind: skill.ActionGreet}
	case model.RequestTypeIntent:
		return resolveIntent(req)
	default:
		return skill.Action{Kind: skill.ActionUnrecognized}
	}
}

func resolveIntent(req model.Request) skill.Action {
	switch req.IntentName {
	case IntentAskAI, IntentAskAIShort,
		IntentAskOpenAI, IntentAskOpenAIShort,
		IntentAskQuestion, IntentAskQuestionShort:
		question := req.Slot(SlotQuestion)
		if strings.TrimSpace(question) == "" {
			question = DefaultQuestion
		}
		return skill.Action{Kind: skill.ActionAskQuestion, Text: question}

	case IntentTranslate, IntentTranslateShort:
		// No default here: an empty phrase short-circuits later.
		phrase, ok := req.Slots[SlotQuestion]
		if !ok {
			phrase = req.Slot(SlotPhrase)
		}
		return skill.Action{Kind: skill.ActionTranslate, Text: strings.TrimSpace(phrase)}

	case IntentAmazonHelp, IntentHelp, IntentHelpShort:
		return skill.Action{Kind: skill.ActionHelp}

	case IntentAmazonStop, IntentAmazonCancel,
		IntentStop, IntentStopShort,
		IntentCancel, IntentCancelShort:
		return skill.Action{Kind: skill.ActionStop}

	default:
		return skill.Action{Kind: skill.ActionUnrecognized}
	}
}
