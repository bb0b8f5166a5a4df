package usecase

import (
	"context"
	"fmt"

	"montblanc-assistant/internal/metrics"
	"montblanc-assistant/internal/model"
	"montblanc-assistant/internal/skill"
)

// Handle implements skill.UseCase.
func (uc *implUseCase) Handle(ctx context.Context, req model.Request) (resp skill.Response) {
	defer func() {
		if r := recover(); r != nil {
			metrics.ObserveAction("panic", metrics.OutcomeError)
			resp = uc.Failure(ctx, fmt.Errorf("recovered from panic: %v", r))
		}
	}()

	action := Resolve(req)
	uc.l.Infof(ctx, "%s: type=%s intent=%q action=%s display=%t",
		LogPrefixHandle, req.Type, req.IntentName, action.Kind, req.HasDisplay)

	text, endSession, echoed, err := uc.dispatch(ctx, action)
	if err != nil {
		metrics.ObserveAction(action.Kind.String(), metrics.OutcomeError)
		return uc.Failure(ctx, fmt.Errorf("action %s: %w", action.Kind, err))
	}

	return Compose(uc.opts.CardTitle, text, endSession, req.HasDisplay, echoed)
}

// dispatch runs the action and returns the speech text, the session flag and
// the input to echo on display devices (nil when nothing is echoed).
func (uc *implUseCase) dispatch(ctx context.Context, action skill.Action) (string, bool, *string, error) {
	switch action.Kind {
	case skill.ActionGreet:
		metrics.ObserveAction(action.Kind.String(), metrics.OutcomeOK)
		return MsgGreeting, false, nil, nil

	case skill.ActionAskQuestion:
		question := action.Text
		text, err := uc.answer(ctx, question)
		if err != nil {
			return "", false, nil, err
		}
		return text, false, &question, nil

	case skill.ActionTranslate:
		phrase := action.Text
		if phrase == "" {
			metrics.ObserveAction(action.Kind.String(), metrics.OutcomeShortCircuit)
			return MsgCouldNotHear, false, nil, nil
		}
		text, err := uc.translate(ctx, phrase)
		if err != nil {
			return "", false, nil, err
		}
		return text, false, &phrase, nil

	case skill.ActionHelp:
		metrics.ObserveAction(action.Kind.String(), metrics.OutcomeOK)
		return MsgHelp, false, nil, nil

	case skill.ActionStop:
		metrics.ObserveAction(action.Kind.String(), metrics.OutcomeOK)
		return MsgGoodbye, true, nil, nil

	default:
		metrics.ObserveAction(action.Kind.String(), metrics.OutcomeOK)
		return MsgUnrecognized, false, nil, nil
	}
}

// Failure implements skill.UseCase. The display is forced to the card branch
// because device capability may not have been determined.
func (uc *implUseCase) Failure(ctx context.Context, err error) skill.Response {
	uc.l.Errorf(ctx, "%s: %v", LogPrefixFailure, err)
	return Compose(uc.opts.CardTitle, MsgGenericFailure, true, false, nil)
}
