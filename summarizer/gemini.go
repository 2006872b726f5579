package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const GEMINI_SYSTEM_INSTRUCTION = `
You are a content summarization assistant for web articles. Summarize the provided text.
Constraints:
- The summary MUST be at most the number of sentences given in the first line of the input ("sentences: N").
- Write plain prose. No markdown, no bullet points, no preamble like "This article".
- Keep critical context (dates, numbers, names).
- Answer in the same language as the article text.
- If the content is a security check (e.g. "Are you human?") that prevents summarization, respond with exactly: UNSUMMARIZABLE
`

// Gemini summarizes through Google's genai API.
type Gemini struct {
	model string
}

func NewGemini(model string) *Gemini {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Gemini{model: model}
}

func (*Gemini) Name() string { return "gemini" }

func (g *Gemini) Summarize(ctx context.Context, in Input) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: os.Getenv("GEMINI_API_KEY"),
	})
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf("sentences: %d\n\n%s", in.SentenceCount, in.Text)
	result, err := client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: GEMINI_SYSTEM_INSTRUCTION}}},
		},
	)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(result.Text())
	if text == "" || text == "UNSUMMARIZABLE" {
		return "", fmt.Errorf("model judged content not summarizable")
	}
	return text, nil
}
