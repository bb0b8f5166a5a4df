package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"montblanc-assistant/internal/metrics"
	"montblanc-assistant/internal/skill/delivery/alexa"
	"montblanc-assistant/pkg/response"
)

const transportProxy = "http_proxy"

// HandleAlexa godoc
// @Summary     Voice platform endpoint
// @Description Accepts a voice-platform request envelope and answers with a response envelope. An undecodable envelope yields the generic failure response, never a transport error.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       body body alexa.RequestEnvelope true "Request envelope"
// @Success     200  {object} alexa.ResponseEnvelope
// @Router      /alexa [POST]
func (h *handler) HandleAlexa(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAlexaReq(c)
	if err != nil {
		response.Envelope(c, alexa.Encode(h.uc.Failure(ctx, err)))
		return
	}

	response.Envelope(c, alexa.Encode(h.uc.Handle(ctx, req)))
}

// HandleProxy godoc
// @Summary     HTTP proxy endpoint
// @Description Same semantics as the voice endpoint, but a payload that cannot be decoded is answered with 500.
// @Tags        Skill
// @Accept      json
// @Produce     json
// @Param       body body alexa.RequestEnvelope true "Request envelope"
// @Success     200  {object} alexa.ResponseEnvelope
// @Failure     500  {object} response.ErrorBody "Internal Server Error"
// @Router      /proxy [POST]
func (h *handler) HandleProxy(c *gin.Context) {
	ctx := c.Request.Context()

	defer func() {
		if r := recover(); r != nil {
			h.fail(c, fmt.Errorf("recovered from panic: %v", r))
		}
	}()

	req, err := h.processAlexaReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Envelope(c, alexa.Encode(h.uc.Handle(ctx, req)))
}

func (h *handler) fail(c *gin.Context, err error) {
	h.l.Errorf(c.Request.Context(), "internal.skill.delivery.http.HandleProxy: %v", err)
	metrics.TransportErrorsTotal.WithLabelValues(transportProxy).Inc()
	response.InternalError(c, err)
}
