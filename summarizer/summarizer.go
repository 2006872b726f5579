package summarizer

import (
	"context"
	"os"
	"strings"

	"summarly/config"
)

// Input is the material a strategy summarizes. SentenceCount is the desired
// output length; strategies treat it as an upper bound.
type Input struct {
	URL           string
	Text          string
	SentenceCount int
}

// Strategy produces summary text for an article.
type Strategy interface {
	Name() string
	Summarize(ctx context.Context, in Input) (string, error)
}

// Registry resolves a summarizer specifier to a Strategy. The specifier is
// opaque to the API layer; anything unknown resolves to the default strategy
// rather than failing, since generation runs fire-and-forget with nobody to
// report an error to.
type Registry struct {
	def    Strategy
	byName map[string]Strategy
}

// NewRegistry builds the registry from config. The extractive leading
// strategy is always available; LLM-backed strategies register only when
// their API key is present in the environment.
func NewRegistry(cfg config.SummarizerConfig) *Registry {
	r := &Registry{byName: map[string]Strategy{}}

	r.register(NewLeading())
	if os.Getenv("GEMINI_API_KEY") != "" {
		r.register(NewGemini(cfg.GeminiModel))
	}
	if os.Getenv("OPENAI_API_KEY") != "" {
		r.register(NewOpenAI(cfg.OpenAIModel))
	}

	if def, ok := r.byName[strings.ToLower(cfg.DefaultSpecifier)]; ok {
		r.def = def
	} else {
		r.def = r.byName["leading"]
	}
	return r
}

func (r *Registry) register(s Strategy) {
	r.byName[s.Name()] = s
}

// Resolve returns the strategy for a specifier, falling back to the default.
func (r *Registry) Resolve(specifier string) Strategy {
	if s, ok := r.byName[strings.ToLower(strings.TrimSpace(specifier))]; ok {
		return s
	}
	return r.def
}

// Names lists the registered specifiers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	return names
}
