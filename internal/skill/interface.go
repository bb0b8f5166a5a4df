package skill

import (
	"context"

	"montblanc-assistant/internal/model"
)

// UseCase is the transport-neutral core of the skill.
type UseCase interface {
	// Handle resolves req, calls the completion service when the action needs it
	// and composes the response. It never returns a partial response: external
	// failures are turned into the generic failure response.
	Handle(ctx context.Context, req model.Request) Response

	// Failure logs err and returns the generic failure response. Native
	// transports use it when the inbound payload cannot become a Request.
	Failure(ctx context.Context, err error) Response
}
