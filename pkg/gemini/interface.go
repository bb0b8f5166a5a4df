package gemini

import "context"

// IGemini is the generateContent client used as an alternative completion
// provider for the skill. Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent runs one single-turn generation with an optional system instruction
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the configured model name
	Model() string
}

// New validates cfg and returns a client. It performs no network call.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
