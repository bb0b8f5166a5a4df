package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"montblanc-assistant/internal/model"
	"montblanc-assistant/internal/skill"
)

type resolveCase struct {
	name string
	req  model.Request
	want skill.Action
}

func resolveCases() []resolveCase {
	return []resolveCase{
		{
			name: "launch greets",
			req:  model.Request{Type: model.RequestTypeLaunch},
			want: skill.Action{Kind: skill.ActionGreet},
		},
		{
			name: "launch ignores slots",
			req: model.Request{Type: model.RequestTypeLaunch,
				Slots: map[string]string{SlotQuestion: "x"}},
			want: skill.Action{Kind: skill.ActionGreet},
		},
		{
			name: "launch ignores intent name",
			req: model.Request{Type: model.RequestTypeLaunch, IntentName: IntentAmazonStop,
				Slots: map[string]string{SlotQuestion: "天気は?", SlotPhrase: "おはよう"}, HasDisplay: true},
			want: skill.Action{Kind: skill.ActionGreet},
		},
		{
			name: "other request type is unrecognized",
			req:  model.Request{Type: model.RequestTypeOther, IntentName: IntentAskAI},
			want: skill.Action{Kind: skill.ActionUnrecognized},
		},
		{
			name: "ask with question",
			req: model.Request{Type: model.RequestTypeIntent, IntentName: IntentAskAI,
				Slots: map[string]string{SlotQuestion: "天気は?"}},
			want: skill.Action{Kind: skill.ActionAskQuestion, Text: "天気は?"},
		},
		{
			name: "ask short form",
			req: model.Request{Type: model.RequestTypeIntent, IntentName: IntentAskQuestionShort,
				Slots: map[string]string{SlotQuestion: "富士山の高さ"}},
			want: skill.Action{Kind: skill.ActionAskQuestion, Text: "富士山の高さ"},
		},
		{
			name: "ask without slot uses default question",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: IntentAskOpenAI},
			want: skill.Action{Kind: skill.ActionAskQuestion, Text: DefaultQuestion},
		},
		{
			name: "ask with blank slot uses default question",
			req: model.Request{Type: model.RequestTypeIntent, IntentName: IntentAskOpenAIShort,
				Slots: map[string]string{SlotQuestion: "  "}},
			want: skill.Action{Kind: skill.ActionAskQuestion, Text: DefaultQuestion},
		},
		{
			name: "translate keeps phrase",
			req: model.Request{Type: model.RequestTypeIntent, IntentName: IntentTranslate,
				Slots: map[string]string{SlotQuestion: " おはよう "}},
			want: skill.Action{Kind: skill.ActionTranslate, Text: "おはよう"},
		},
		{
			name: "translate falls back to phrase slot",
			req: model.Request{Type: model.RequestTypeIntent, IntentName: IntentTranslateShort,
				Slots: map[string]string{SlotPhrase: "ありがとう"}},
			want: skill.Action{Kind: skill.ActionTranslate, Text: "ありがとう"},
		},
		{
			name: "translate without slot has no default",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: IntentTranslateShort},
			want: skill.Action{Kind: skill.ActionTranslate},
		},
		{
			name: "amazon help",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: IntentAmazonHelp},
			want: skill.Action{Kind: skill.ActionHelp},
		},
		{
			name: "help short form",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: IntentHelpShort},
			want: skill.Action{Kind: skill.ActionHelp},
		},
		{
			name: "amazon cancel stops",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: IntentAmazonCancel},
			want: skill.Action{Kind: skill.ActionStop},
		},
		{
			name: "stop short form",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: IntentStopShort},
			want: skill.Action{Kind: skill.ActionStop},
		},
		{
			name: "unknown intent",
			req:  model.Request{Type: model.RequestTypeIntent, IntentName: "OrderPizzaIntent"},
			want: skill.Action{Kind: skill.ActionUnrecognized},
		},
	}
}

func TestResolve(t *testing.T) {
	for _, tt := range resolveCases() {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.req))
		})
	}
}

func TestResolve_SameRequestSameAction(t *testing.T) {
	for _, tt := range resolveCases() {
		t.Run(tt.name, func(t *testing.T) {
			first := Resolve(tt.req)
			second := Resolve(tt.req)

			assert.Equal(t, first, second)
		})
	}
}
