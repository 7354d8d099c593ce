// Package types defines the value types shared by the scraper, the output
// encoders and the CLI. Metrics is the canonical in-memory Metric Mapping of
// one scrape, separate from any wire or print format.
package types
