// Package output prints a scrape Result to stdout in one of two formats:
//
//   - json: the Metric Mapping as a single JSON object, keys sorted.
//   - prometheus: text exposition with one gauge family per key, named
//     wlx_<key> and labelled with the device address and model. The output
//     can be dropped into a node_exporter textfile collector directory.
package output
