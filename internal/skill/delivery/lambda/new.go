package lambda

import (
	"montblanc-assistant/internal/skill"
	pkgLog "montblanc-assistant/pkg/log"
)

// Handler serves the Lambda event formats the skill can be deployed behind.
type Handler struct {
	l  pkgLog.Logger
	uc skill.UseCase
}

// New creates a new Lambda handler.
func New(l pkgLog.Logger, uc skill.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
