package types

import "sort"

// Metrics maps an output key (e.g. "cpu_usage", "2ghz_client") to the numeric
// value extracted for it. One mapping is produced per scrape.
type Metrics map[string]float64

// Keys returns the metric keys in lexical order.
func (m Metrics) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
