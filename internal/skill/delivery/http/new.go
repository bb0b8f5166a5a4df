package http

import (
	"github.com/gin-gonic/gin"

	"montblanc-assistant/internal/skill"
	pkgLog "montblanc-assistant/pkg/log"
)

// Handler is the public interface for the skill HTTP delivery layer.
type Handler interface {
	HandleAlexa(c *gin.Context)
	HandleProxy(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc skill.UseCase
}

// New creates a new HTTP handler for the skill.
func New(l pkgLog.Logger, uc skill.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
