package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"montblanc-assistant/internal/metrics"
	"montblanc-assistant/internal/skill"
	"montblanc-assistant/pkg/llmprovider"
)

// answer asks the completion service a question. An empty answer is a
// normal outcome and yields MsgNoAnswer.
func (uc *implUseCase) answer(ctx context.Context, question string) (string, error) {
	text, err := uc.complete(ctx, skill.ActionAskQuestion, PersonaAssistant, question, uc.opts.Ask)
	if err != nil {
		return "", err
	}
	if text == "" {
		metrics.ObserveAction(skill.ActionAskQuestion.String(), metrics.OutcomeFallback)
		return MsgNoAnswer, nil
	}
	metrics.ObserveAction(skill.ActionAskQuestion.String(), metrics.OutcomeOK)
	return text, nil
}

// translate renders phrase in English. The caller must not pass an empty phrase.
func (uc *implUseCase) translate(ctx context.Context, phrase string) (string, error) {
	text, err := uc.complete(ctx, skill.ActionTranslate, PersonaTranslator, fmt.Sprintf(PromptTranslate, phrase), uc.opts.Translate)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.ObserveAction(skill.ActionTranslate.String(), metrics.OutcomeFallback)
		return MsgNoTranslation, nil
	}
	metrics.ObserveAction(skill.ActionTranslate.String(), metrics.OutcomeOK)
	return text, nil
}

func (uc *implUseCase) complete(ctx context.Context, kind skill.ActionKind, persona, content string, budget Budget) (string, error) {
	start := time.Now()
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: persona,
		Messages:          []llmprovider.Message{{Role: llmprovider.RoleUser, Text: content}},
		Temperature:       budget.Temperature,
		MaxTokens:         budget.MaxTokens,
	})
	metrics.ObserveCompletion(kind.String(), start)
	if err != nil {
		return "", fmt.Errorf("%w: %s completion: %w", skill.ErrExternalService, kind, err)
	}
	if resp == nil {
		return "", nil
	}
	return resp.Text, nil
}
