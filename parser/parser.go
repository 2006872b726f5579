package parser

import (
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ParsedArticle is the extraction result handed to the summarizer strategies.
type ParsedArticle struct {
	PlainTextContent string
	TopImage         string
}

// ExtractArticle extracts readable article text from raw HTML. Readability is
// the main extractor; trafilatura and goose are alternates tried in order, and
// a plain text-node walk is the last resort so extraction never fails outright.
func ExtractArticle(htmlStr string) *ParsedArticle {
	if a, err := ParseHtmlWithReadability(htmlStr); err == nil && strings.TrimSpace(a.PlainTextContent) != "" {
		return a
	}
	if a, err := ParseHtmlWithTrafilatura(htmlStr); err == nil && strings.TrimSpace(a.PlainTextContent) != "" {
		return a
	}
	if a, err := ParseHtmlWithGoose(htmlStr); err == nil && strings.TrimSpace(a.PlainTextContent) != "" {
		return a
	}
	return &ParsedArticle{PlainTextContent: ExtractTextNodes(htmlStr)}
}

// main parser
func ParseHtmlWithReadability(htmlStr string) (*ParsedArticle, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.TextContent,
		TopImage:         article.Image,
	}, nil
}

func ParseHtmlWithTrafilatura(htmlStr string) (*ParsedArticle, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedArticle{
		PlainTextContent: article.ContentText,
		TopImage:         article.Metadata.Image,
	}, nil
}

func ParseHtmlWithGoose(htmlStr string) (*ParsedArticle, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return nil, err
	}
	return &ParsedArticle{
		PlainTextContent: article.CleanedText,
		TopImage:         article.TopImage,
	}, nil
}

// ExtractTextNodes walks the DOM and concatenates all text nodes, skipping
// script and style subtrees.
func ExtractTextNodes(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(doc)
	return b.String()
}
