package monitor

import (
	"context"

	"github.com/aleister1102/siteeagle/internal/extractor"
	"github.com/aleister1102/siteeagle/internal/httpclient"
	"github.com/rs/zerolog"
)

// Fetcher retrieves the watched content for a locator.
type Fetcher struct {
	httpClient *httpclient.HTTPClient
	extractor  *extractor.SelectorExtractor
	logger     zerolog.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(client *httpclient.HTTPClient, ext *extractor.SelectorExtractor, logger zerolog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: client,
		extractor:  ext,
		logger:     logger.With().Str("component", "Fetcher").Logger(),
	}
}

// Fetch performs one GET of locator and returns its text, narrowed by selector
// when one is given. Every failure is returned as *FetchError. There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, locator, selector string) (string, error) {
	result, err := f.httpClient.FetchContent(ctx, locator)
	if err != nil {
		f.logger.Error().Err(err).Str("url", locator).Msg("Failed to fetch content")
		return "", &FetchError{URL: locator, Err: err}
	}

	text, err := f.extractor.Decode(result.Content, result.ContentType)
	if err != nil {
		f.logger.Error().Err(err).Str("url", locator).Str("content_type", result.ContentType).Msg("Failed to decode content")
		return "", &FetchError{URL: locator, Err: err}
	}

	if selector == "" {
		return text, nil
	}

	extracted, err := f.extractor.Extract(text, selector)
	if err != nil {
		f.logger.Error().Err(err).Str("url", locator).Str("selector", selector).Msg("Failed to apply selector")
		return "", &FetchError{URL: locator, Err: err}
	}

	f.logger.Debug().Str("url", locator).Int("size", len(extracted)).Msg("Content fetched and extracted")
	return extracted, nil
}
