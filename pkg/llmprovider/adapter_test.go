package llmprovider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"montblanc-assistant/pkg/gemini"
)

type fakeGemini struct {
	got *gemini.Request
}

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{Content: gemini.Content{Parts: []gemini.Part{{Text: "Good morning."}}}}, nil
}

func (f *fakeGemini) Model() string { return gemini.DefaultModel }

func TestGeminiAdapter_MapsRolesAndInstruction(t *testing.T) {
	client := &fakeGemini{}
	a := NewGeminiAdapter(client)

	resp, err := a.GenerateContent(context.Background(), &Request{
		SystemInstruction: "translate",
		Messages: []Message{
			{Role: RoleUser, Text: "おはよう"},
			{Role: RoleAssistant, Text: "Good morning."},
		},
		Temperature: 0.2,
		MaxTokens:   100,
	})

	require.NoError(t, err)
	assert.Equal(t, "Good morning.", resp.Text)
	assert.Equal(t, "gemini", resp.ProviderName)
	assert.Equal(t, gemini.DefaultModel, resp.ModelName)

	require.NotNil(t, client.got)
	assert.Equal(t, "translate", client.got.SystemInstruction)
	require.Len(t, client.got.Messages, 2)
	assert.Equal(t, RoleUser, client.got.Messages[0].Role)
	assert.Equal(t, gemini.RoleModel, client.got.Messages[1].Role)
	assert.Equal(t, 100, client.got.MaxTokens)
}
