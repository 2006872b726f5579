package generator

import (
	"context"
	"errors"
	"strings"
	"time"

	"summarly/config"
	"summarly/fetcher"
	"summarly/logger"
	"summarly/models"
	"summarly/parser"
	"summarly/renderer"
	"summarly/repositories"
	"summarly/summarizer"
)

// Store is the slice of persistence the generator needs: writing the
// generated text back onto an existing record.
type Store interface {
	SetGenerated(ctx context.Context, id int64, text string, info models.GenerationInfo) error
}

// Generator runs the background summarization pipeline for one record:
// fetch the page, extract the article text, run the selected strategy and
// write the result back. It is invoked fire-and-forget; every failure is
// logged and swallowed, nothing is retried and no caller observes the
// outcome. A record whose generation failed simply keeps an empty summary.
type Generator struct {
	store    Store
	registry *summarizer.Registry
	fetch    *fetcher.Client
	cfg      config.FetchConfig
}

func New(store Store, registry *summarizer.Registry, cfg config.FetchConfig) *Generator {
	return &Generator{
		store:    store,
		registry: registry,
		fetch:    fetcher.New(time.Duration(cfg.TimeoutSeconds) * time.Second),
		cfg:      cfg,
	}
}

// Generate produces and stores the summary text for a record.
func (g *Generator) Generate(ctx context.Context, id int64, url, specifier string, sentenceCount int) {
	start := time.Now()

	text, err := g.articleText(ctx, url)
	if err != nil {
		logger.ErrorWithFields("summary generation failed to fetch article", logger.Fields{
			"summary_id": id, "url": url, "error": err.Error(),
		})
		return
	}

	strategy := g.registry.Resolve(specifier)
	out, err := strategy.Summarize(ctx, summarizer.Input{
		URL:           url,
		Text:          text,
		SentenceCount: sentenceCount,
	})
	if err != nil {
		logger.ErrorWithFields("summary generation failed", logger.Fields{
			"summary_id": id, "url": url, "strategy": strategy.Name(), "error": err.Error(),
		})
		return
	}

	info := models.GenerationInfo{
		Specifier:     strategy.Name(),
		SentenceCount: sentenceCount,
		GeneratedAt:   time.Now(),
	}
	if err := g.store.SetGenerated(ctx, id, out, info); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// The record was deleted while generation was in flight. This
			// race is accepted: the result is dropped on the floor.
			logger.WarnWithFields("summary generated for a deleted record, dropping result", logger.Fields{
				"summary_id": id, "url": url,
			})
			return
		}
		logger.ErrorWithFields("failed to store generated summary", logger.Fields{
			"summary_id": id, "url": url, "error": err.Error(),
		})
		return
	}

	logger.InfoWithFields("summary generated", logger.Fields{
		"summary_id": id,
		"strategy":   strategy.Name(),
		"duration":   time.Since(start).String(),
	})
}

// articleText fetches the page and extracts its readable text. When the
// plain fetch yields too little text and the renderer fallback is enabled,
// the page is re-fetched through headless Chrome.
func (g *Generator) articleText(ctx context.Context, url string) (string, error) {
	htmlStr, err := g.fetch.GetHTML(ctx, url)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(parser.ExtractArticle(htmlStr).PlainTextContent)
	if len([]rune(text)) >= g.cfg.MinTextLength || !g.cfg.RenderFallback {
		return text, nil
	}

	rendered, err := renderer.RenderHTML(ctx, url)
	if err != nil {
		// keep whatever the plain fetch produced
		logger.WarnWithFields("render fallback failed, using plain fetch", logger.Fields{
			"url": url, "error": err.Error(),
		})
		return text, nil
	}
	return strings.TrimSpace(parser.ExtractArticle(rendered).PlainTextContent), nil
}
