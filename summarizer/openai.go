package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
)

const openaiTemperature = 0.2

const openaiSystemPrompt = `Summarize the given web article.
The summary must have at most the requested number of sentences,
covering only the main ideas so the reader can decide whether
to open the full article.
Keep only critical context (dates, numbers, names, calls to action).
Remove fillers/emojis/hashtags/links unless essential.
Stay neutral and objective.
Answer in the same language as the article text.`

// OpenAI summarizes through the Chat Completions API. The API key comes from
// the OPENAI_API_KEY environment variable read by the client itself.
type OpenAI struct {
	client openai.Client
	model  string
}

func NewOpenAI(model string) *OpenAI {
	if model == "" {
		model = string(openai.ChatModelGPT4_1Mini)
	}
	return &OpenAI{client: openai.NewClient(), model: model}
}

func (*OpenAI) Name() string { return "openai" }

func (s *OpenAI) Summarize(ctx context.Context, in Input) (string, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return "", fmt.Errorf("input is required")
	}

	promptBuilder := strings.Builder{}
	fmt.Fprintf(&promptBuilder, "Max sentences: %d\n", in.SentenceCount)
	if sourceURL := strings.TrimSpace(in.URL); sourceURL != "" {
		promptBuilder.WriteString("Source: ")
		promptBuilder.WriteString(sourceURL)
		promptBuilder.WriteString("\n")
	}
	promptBuilder.WriteString("Content:\n")
	promptBuilder.WriteString(text)

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openaiSystemPrompt),
			openai.UserMessage(promptBuilder.String()),
		},
		Temperature: openai.Float(openaiTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion choices are missing")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("chat completion choice message content is missing")
	}

	return summary, nil
}
