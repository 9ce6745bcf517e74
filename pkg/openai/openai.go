package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

type IOpenAI interface {
	AnalyzeImage(ctx context.Context, imageBase64, prompt string) (string, error)
	GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateEmbedding(ctx context.Context, input string) ([]float32, error)
}

type openAIService struct {
	client              *openai.Client
	deployment          string
	embeddingDeployment string
}

func NewOpenAI() IOpenAI {
	apiKey := os.Getenv("AZURE_OPENAI_KEY")
	endpoint := os.Getenv("AZURE_OPENAI_ENDPOINT")

	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	if v := os.Getenv("AZURE_OPENAI_API_VERSION"); v != "" {
		cfg.APIVersion = v
	}

	return &openAIService{
		client:              openai.NewClientWithConfig(cfg),
		deployment:          os.Getenv("AZURE_OPENAI_DEPLOYMENT_NAME"),
		embeddingDeployment: os.Getenv("AZURE_OPENAI_EMBEDDING_DEPLOYMENT"),
	}
}

// AnalyzeImage sends an image alongside a text prompt to the vision
// deployment. imageBase64 must not carry a data-URL prefix.
func (o *openAIService) AnalyzeImage(ctx context.Context, imageBase64, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.deployment,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{
							Type: openai.ChatMessagePartTypeText,
							Text: prompt,
						},
						{
							Type: openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{
								URL: fmt.Sprintf("data:image/jpeg;base64,%s", imageBase64),
							},
						},
					},
				},
			},
			Temperature: 0.5,
			MaxTokens:   4096,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai vision request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai vision request: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *openAIService) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.deployment,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: 0.7,
			TopP:        0.95,
			MaxTokens:   4096,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion request: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *openAIService) GenerateEmbedding(ctx context.Context, input string) ([]float32, error) {
	resp, err := o.client.CreateEmbeddings(
		ctx,
		openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(o.embeddingDeployment),
			Input: []string{input},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("openai embedding request: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai embedding request: empty response")
	}

	return resp.Data[0].Embedding, nil
}
