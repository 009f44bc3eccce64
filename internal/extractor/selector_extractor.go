package extractor

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/siteeagle/internal/common"
	"github.com/andybalholm/cascadia"
	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
)

// SelectorExtractor turns a raw response body into the text that gets fingerprinted.
type SelectorExtractor struct {
	logger zerolog.Logger
}

// NewSelectorExtractor creates a new SelectorExtractor
func NewSelectorExtractor(logger zerolog.Logger) *SelectorExtractor {
	return &SelectorExtractor{
		logger: logger.With().Str("component", "SelectorExtractor").Logger(),
	}
}

// Decode converts body to UTF-8 using the charset from contentType, a BOM or an
// HTML meta tag, in that order. Valid UTF-8 without hints is returned unchanged.
func (se *SelectorExtractor) Decode(body []byte, contentType string) (string, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", common.WrapError(err, "failed to determine body encoding")
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", common.WrapError(err, "failed to decode body")
	}
	return string(decoded), nil
}

// Extract narrows document to the elements matching selector. Each match is
// rendered back to its outer HTML and matches are joined with "\n" in document
// order. An empty selector returns document unchanged; no matches yields "".
func (se *SelectorExtractor) Extract(document string, selector string) (string, error) {
	if selector == "" {
		return document, nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", common.NewValidationError("selector", selector, err.Error())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", common.WrapError(err, "failed to parse HTML document")
	}

	var parts []string
	var renderErr error
	doc.FindMatcher(matcher).EachWithBreak(func(i int, s *goquery.Selection) bool {
		markup, err := goquery.OuterHtml(s)
		if err != nil {
			renderErr = common.WrapErrorf(err, "failed to render match %d", i)
			return false
		}
		parts = append(parts, markup)
		return true
	})
	if renderErr != nil {
		return "", renderErr
	}

	if len(parts) == 0 {
		se.logger.Debug().Str("selector", selector).Msg("Selector matched no elements")
	}
	return strings.Join(parts, "\n"), nil
}
