package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"montblanc-assistant/internal/metrics"
	"montblanc-assistant/internal/skill"
	"montblanc-assistant/internal/skill/delivery/alexa"
	pkgLog "montblanc-assistant/pkg/log"
	"montblanc-assistant/pkg/response"
)

const transportAPIGateway = "lambda_apigateway"

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// HandleAlexa serves direct voice-platform invocations. The event is taken raw
// so an undecodable envelope still produces a voice response.
func (h *Handler) HandleAlexa(ctx context.Context, event json.RawMessage) (alexa.ResponseEnvelope, error) {
	ctx = withRequestID(ctx)
	h.l.Debugf(ctx, "internal.skill.delivery.lambda.HandleAlexa: received event: %s", []byte(event))

	req, err := alexa.Decode(event)
	if err != nil {
		return alexa.Encode(h.uc.Failure(ctx, err)), nil
	}
	return alexa.Encode(h.uc.Handle(ctx, req)), nil
}

// HandleAPIGateway serves the envelope proxied through API Gateway. Failures
// before a Request exists are answered with 500 and never returned as a
// Lambda error.
func (h *Handler) HandleAPIGateway(ctx context.Context, event events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	ctx = withRequestID(ctx)

	defer func() {
		if r := recover(); r != nil {
			resp = h.fail(ctx, fmt.Errorf("recovered from panic: %v", r))
		}
	}()

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		body, err = base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return h.fail(ctx, fmt.Errorf("%w: base64 body: %w", skill.ErrMalformedPayload, err)), nil
		}
	}

	h.l.Debugf(ctx, "internal.skill.delivery.lambda.HandleAPIGateway: %s %s received event: %s",
		event.HTTPMethod, event.Path, body)

	req, err := alexa.Decode(body)
	if err != nil {
		return h.fail(ctx, err), nil
	}

	out, err := json.Marshal(alexa.Encode(h.uc.Handle(ctx, req)))
	if err != nil {
		return h.fail(ctx, fmt.Errorf("encode response: %w", err)), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers:    jsonHeaders,
		Body:       string(out),
	}, nil
}

func (h *Handler) fail(ctx context.Context, err error) events.APIGatewayProxyResponse {
	h.l.Errorf(ctx, "internal.skill.delivery.lambda.HandleAPIGateway: %v", err)
	metrics.TransportErrorsTotal.WithLabelValues(transportAPIGateway).Inc()

	out, _ := json.Marshal(response.ErrorBody{Error: response.DefaultErrorMessage})
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusInternalServerError,
		Headers:    jsonHeaders,
		Body:       string(out),
	}
}

// withRequestID tags ctx with the Lambda request id, or a fresh one when the
// handler runs outside the Lambda runtime.
func withRequestID(ctx context.Context) context.Context {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return pkgLog.WithRequestID(ctx, lc.AwsRequestID)
	}
	return pkgLog.WithRequestID(ctx, uuid.NewString())
}
