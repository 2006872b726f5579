package summarizer

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Leading is the extractive fallback strategy: the first N sentences of the
// article text. It needs no external service, so it is always registered and
// serves as the default when no LLM key is configured.
type Leading struct{}

func NewLeading() *Leading { return &Leading{} }

func (*Leading) Name() string { return "leading" }

func (*Leading) Summarize(ctx context.Context, in Input) (string, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return "", fmt.Errorf("input is required")
	}
	n := in.SentenceCount
	if n <= 0 {
		n = 1
	}

	sentences := SplitSentences(text)
	if len(sentences) > n {
		sentences = sentences[:n]
	}
	return strings.Join(sentences, " "), nil
}

// SplitSentences splits text on sentence terminators followed by whitespace.
// Newlines also terminate a sentence so headline-style extraction output
// does not collapse into one giant sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			flush()
			continue
		}
		b.WriteRune(r)
		if isTerminator(r) {
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if next == 0 || unicode.IsSpace(next) {
				flush()
			}
		}
	}
	flush()
	return sentences
}

func isTerminator(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}
