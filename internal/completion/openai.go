package completion

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is the completions-API model used for all requests. Model
// selection is deliberately not a configuration surface.
const DefaultModel = string(openai.CompletionNewParamsModelGPT3_5TurboInstruct)

// OpenAIService implements Service against the OpenAI legacy completions
// endpoint, or any OpenAI-compatible server via baseURL.
type OpenAIService struct {
	client openai.Client
	model  string
}

func NewOpenAIService(apiKey, baseURL string) *OpenAIService {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIService{
		client: openai.NewClient(opts...),
		model:  DefaultModel,
	}
}

func (s *OpenAIService) Complete(ctx context.Context, req Request) ([]Choice, error) {
	params := openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(s.model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
		TopP:        openai.Float(req.TopP),
	}

	resp, err := s.client.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}

	choices := make([]Choice, 0, len(resp.Choices))
	for _, c := range resp.Choices {
		choices = append(choices, Choice{Text: c.Text})
	}
	return choices, nil
}
