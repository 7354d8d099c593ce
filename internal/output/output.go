package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/obsidianstack/wlxstat/internal/scraper"
)

// Format selects the encoding used by Write.
type Format string

// Supported formats.
const (
	FormatJSON       Format = "json"
	FormatPrometheus Format = "prometheus"
)

// MetricPrefix is prepended to every key in Prometheus output.
const MetricPrefix = "wlx_"

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// help holds HELP text for the keys the built-in profiles produce.
var help = map[string]string{
	"cpu_usage":   "CPU usage in percent.",
	"mem_usage":   "Memory usage in percent.",
	"temperature": "Chassis temperature in degrees Celsius.",
	"2ghz_client": "Number of clients associated on the 2.4GHz radio.",
	"5ghz_client": "Number of clients associated on the 5GHz radio.",
}

// ParseFormat returns the Format named by s (case-insensitive). "prom" is
// accepted as shorthand for prometheus.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "prometheus", "prom":
		return FormatPrometheus, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
	}
}

// Write encodes res to w in format f.
func Write(w io.Writer, res *scraper.Result, f Format) error {
	switch f {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatPrometheus:
		return writePrometheus(w, res)
	default:
		return fmt.Errorf("output: %w %q", ErrUnknownFormat, f)
	}
}

func writeJSON(w io.Writer, res *scraper.Result) error {
	if err := json.NewEncoder(w).Encode(res.Metrics); err != nil {
		return fmt.Errorf("output: encode json: %w", err)
	}
	return nil
}

func writePrometheus(w io.Writer, res *scraper.Result) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families(res) {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("output: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// families converts res into one gauge MetricFamily per key, sorted by key.
func families(res *scraper.Result) []*dto.MetricFamily {
	labels := []*dto.LabelPair{
		{Name: proto.String("address"), Value: proto.String(res.Address)},
		{Name: proto.String("model"), Value: proto.String(string(res.Model))},
	}

	out := make([]*dto.MetricFamily, 0, len(res.Metrics))
	for _, key := range res.Metrics.Keys() {
		h, ok := help[key]
		if !ok {
			h = "Value of " + key + " from the WLX status page."
		}
		out = append(out, &dto.MetricFamily{
			Name: proto.String(MetricName(key)),
			Help: proto.String(h),
			Type: dto.MetricType_GAUGE.Enum(),
			Metric: []*dto.Metric{{
				Label: labels,
				Gauge: &dto.Gauge{Value: proto.Float64(res.Metrics[key])},
			}},
		})
	}
	return out
}

// MetricName returns the Prometheus metric name for key. Characters outside
// [a-zA-Z0-9_] become underscores.
func MetricName(key string) string {
	var b strings.Builder
	b.WriteString(MetricPrefix)
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
