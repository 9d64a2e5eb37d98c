// Package pagination accumulates Zoom list endpoints into a single envelope.
//
// Zoom paginates with an opaque next_page_token embedded in each response
// body; an empty or absent token signals the last page. This package follows
// the token sequentially and concatenates every list-valued field across
// pages, matching the vendor's observed semantics (the original query is not
// repeated after page 1).
//
// Example usage:
//
//	c, _ := client.FromEnvironment()
//	res, err := pagination.FetchAllPages(ctx, c, "/users/me/meetings", nil, true)
//
// Known limitation: there is no maximum-page cap, so a vendor response that
// always carries a nonempty token would loop forever.
package pagination
