// Package scraper fetches the WLX system status page and extracts the metrics
// named by a device.Profile.
//
// The pipeline is Scraper.Scrape(ctx, addr, model):
//
//   - device.Resolve picks the Profile and builds the URL; an unknown model
//     fails here, before the Fetcher is touched.
//   - Fetcher.Fetch performs exactly one GET. The HTTP implementation adds the
//     Basic Authorization header through basicAuthRoundTripper (fetch.go) and
//     applies no retry and no client timeout.
//   - ParseDocument decodes the page to UTF-8 (the firmware serves Shift_JIS /
//     EUC-JP) and builds a goquery tree.
//   - Extract asks a Locator for the value cell of every FieldRule and keeps
//     the leading number of the cell text (ParseLeadingNumber).
//
// Extraction is all-or-nothing: if any field cannot be located or parsed the
// whole scrape fails and every failing field is reported in one joined error
// of *FieldError values.
package scraper
