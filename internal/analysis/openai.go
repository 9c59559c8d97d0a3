package analysis

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/model"
)

var _ model.Analyzer = (*Client)(nil)

const systemPrompt = "You are a fact-checking assistant. You assess text claims " +
	"for misinformation and answer in concise markdown."

const promptTemplate = `Analyze the following claim for misinformation.
State whether it is true, false, or misleading, explain the reasoning,
and mention the kind of evidence that supports or contradicts it.
Respond in markdown.

Claim: %s`

// Client calls the generative-language provider. Each Analyze call is a
// single fresh round trip: no timeout, no retry, no caching.
type Client struct {
	client *openai.Client
	model  string
	logger *logger.Logger
}

// NewClient creates a provider client. An empty baseURL keeps the provider
// default; a non-empty one points at any OpenAI-compatible endpoint.
func NewClient(apiKey, baseURL, modelName string, logger *logger.Logger) *Client {
	conf := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		conf.BaseURL = baseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(conf),
		model:  modelName,
		logger: logger,
	}
}

// Analyze embeds the claim into the fixed prompt template and returns the
// provider's generated markdown unmodified.
func (c *Client) Analyze(ctx context.Context, claim string) (string, error) {
	c.logger.Debug("Analysis client: requesting completion", "model", c.model)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(claim)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}

	c.logger.Debug("Analysis client: completion received",
		"finish_reason", resp.Choices[0].FinishReason)

	return resp.Choices[0].Message.Content, nil
}

func buildPrompt(claim string) string {
	return fmt.Sprintf(promptTemplate, claim)
}
