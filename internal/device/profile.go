package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// StatusPath is the system status page served by the WLX management UI.
const StatusPath = "/cgi-bin/admin/manage-system.sh"

// DefaultHeading is the element the firmware uses for section titles.
const DefaultHeading = "h3"

// ErrUnsupportedModel is returned when a model id has no registered Profile.
var ErrUnsupportedModel = errors.New("unsupported device type")

// Model identifies a supported access point.
type Model string

// Supported models.
const (
	WLX402 Model = "wlx402"
	WLX312 Model = "wlx312"
)

// FieldRule locates one metric on the status page.
type FieldRule struct {
	// Section is matched against the text of a section heading.
	Section string

	// Row is matched against the label cell of a table row in that section.
	Row string

	// Key is the output key the parsed value is reported under.
	Key string
}

// Profile is the set of rules specific to one access point model.
type Profile struct {
	Model Model

	// Path is the status page path appended to the device address.
	Path string

	// Heading is the CSS selector for section headings.
	Heading string

	// Rules are evaluated in order; every rule yields exactly one metric.
	Rules []FieldRule
}

// URL returns the status page URL for addr. addr is used verbatim.
func (p Profile) URL(addr string) string {
	return "http://" + addr + p.Path
}

// Keys returns the output keys of p's rules in rule order.
func (p Profile) Keys() []string {
	keys := make([]string, len(p.Rules))
	for i, r := range p.Rules {
		keys[i] = r.Key
	}
	return keys
}

// Section and row labels as printed by the WLX firmware.
const (
	sectionSystem   = "システム情報"
	sectionWLAN24   = "無線情報 (2.4GHz)"
	sectionWLAN5    = "無線情報 (5GHz)"
	rowCPU          = "CPU稼働率"
	rowMemory       = "メモリ使用率"
	rowTemperature  = "筐体内温度"
	rowClientsCount = "接続端末台数"
)

// wlxRules is shared by WLX402 and WLX312; both run the same management UI.
var wlxRules = []FieldRule{
	{Section: sectionSystem, Row: rowCPU, Key: "cpu_usage"},
	{Section: sectionSystem, Row: rowMemory, Key: "mem_usage"},
	{Section: sectionSystem, Row: rowTemperature, Key: "temperature"},
	{Section: sectionWLAN24, Row: rowClientsCount, Key: "2ghz_client"},
	{Section: sectionWLAN5, Row: rowClientsCount, Key: "5ghz_client"},
}

var registry = map[Model]Profile{
	WLX402: {Model: WLX402, Path: StatusPath, Heading: DefaultHeading, Rules: wlxRules},
	WLX312: {Model: WLX312, Path: StatusPath, Heading: DefaultHeading, Rules: wlxRules},
}

// Models returns the supported model ids in lexical order.
func Models() []string {
	out := make([]string, 0, len(registry))
	for m := range registry {
		out = append(out, string(m))
	}
	sort.Strings(out)
	return out
}

// Lookup returns the Profile for id. Matching is case-insensitive and ignores
// surrounding whitespace.
func Lookup(id string) (Profile, error) {
	p, ok := registry[Model(strings.ToLower(strings.TrimSpace(id)))]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q (supported: %s)",
			ErrUnsupportedModel, id, strings.Join(Models(), ", "))
	}
	// Hand out a private copy so callers cannot mutate the shared rules.
	p.Rules = append([]FieldRule(nil), p.Rules...)
	return p, nil
}

// Resolve looks up the Profile for id and builds the status page URL for addr.
func Resolve(addr, id string) (string, Profile, error) {
	p, err := Lookup(id)
	if err != nil {
		return "", Profile{}, err
	}
	return p.URL(addr), p, nil
}
