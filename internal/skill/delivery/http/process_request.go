package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"montblanc-assistant/internal/model"
	"montblanc-assistant/internal/skill"
	"montblanc-assistant/internal/skill/delivery/alexa"
)

// processAlexaReq reads the raw body and decodes the voice envelope.
func (h *handler) processAlexaReq(c *gin.Context) (model.Request, error) {
	data, err := c.GetRawData()
	if err != nil {
		return model.Request{}, fmt.Errorf("%w: read body: %w", skill.ErrMalformedPayload, err)
	}
	h.l.Debugf(c.Request.Context(), "internal.skill.delivery.http.processAlexaReq: %s %s received event: %s",
		c.Request.Method, c.Request.URL.Path, data)
	return alexa.Decode(data)
}
