package pagination

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// PageGetter is the interface the Zoom client implements for single-page
// fetching of a list endpoint.
type PageGetter interface {
	// GetJSON fetches one page and returns the decoded response envelope.
	GetJSON(ctx context.Context, endpoint string, query map[string]string, raiseOnError bool) (map[string]any, error)
}

// nextPageTokenKey is the continuation field Zoom embeds in list responses.
const nextPageTokenKey = "next_page_token"

// FetchAllPages fetches every page of a list endpoint and merges the pages
// into one envelope.
//
// Page 1 is fetched with the caller's query. While the response carries a
// non-empty next_page_token, the next page is fetched with ONLY the token as
// query: Zoom does not expect the original parameters to be repeated, so they
// are intentionally dropped on follow-up pages. Every list-valued field of
// each page is appended onto the same field of the accumulated envelope in
// page-fetch order. The merged envelope's next_page_token is set to the value
// that ended the loop, normally the empty string.
//
// The loop has no page cap; it terminates only when the vendor returns an
// empty or absent token.
func FetchAllPages(ctx context.Context, g PageGetter, endpoint string, query map[string]string, raiseOnError bool) (map[string]any, error) {
	res, err := g.GetJSON(ctx, endpoint, query, raiseOnError)
	if err != nil {
		return nil, fmt.Errorf("fetch first page: %w", err)
	}

	token := tokenOf(res)
	pages := 1

	for token != "" {
		page, err := g.GetJSON(ctx, endpoint, map[string]string{nextPageTokenKey: token}, raiseOnError)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", pages+1, err)
		}

		token = tokenOf(page)
		pages++

		for key, value := range page {
			items, ok := value.([]any)
			if !ok {
				continue
			}
			existing, _ := res[key].([]any)
			res[key] = append(existing, items...)
		}
	}

	res[nextPageTokenKey] = token

	log.Debug().
		Str("endpoint", endpoint).
		Int("pages", pages).
		Msg("Accumulated paginated endpoint")

	return res, nil
}

// tokenOf reads the continuation token from a page, treating an absent or
// non-string value as the final page.
func tokenOf(page map[string]any) string {
	token, _ := page[nextPageTokenKey].(string)
	return token
}
