package scraper

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/obsidianstack/wlxstat/internal/device"
	"github.com/obsidianstack/wlxstat/pkg/types"
)

// ErrNotNumeric means the value cell does not start with a number.
var ErrNotNumeric = errors.New("value has no leading number")

// leadingNumber keeps digits and at most one decimal part; units such as
// "%" or "°C" after it are dropped.
var leadingNumber = regexp.MustCompile(`^[0-9]+(?:\.[0-9]+)?`)

// FieldError reports one rule that could not be satisfied.
type FieldError struct {
	Key     string
	Section string
	Row     string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s (%s / %s): %v", e.Key, e.Section, e.Row, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ParseLeadingNumber returns the number at the start of s after trimming
// whitespace: "45%" is 45, "37.5°C" is 37.5.
func ParseLeadingNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrNotNumeric, s, err)
	}
	return v, nil
}

// ParseDocument decodes page to UTF-8 using its Content-Type or <meta>
// charset and parses it into a document tree.
func ParseDocument(page *Page) (*goquery.Document, error) {
	r, err := charset.NewReader(bytes.NewReader(page.Body), page.ContentType)
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Extract evaluates every rule of p against doc. It returns a mapping with
// exactly the profile's keys, or nil and the joined *FieldError of every rule
// that failed.
func Extract(doc *goquery.Document, p device.Profile, loc Locator) (types.Metrics, error) {
	metrics := make(types.Metrics, len(p.Rules))
	var errs []error

	for _, rule := range p.Rules {
		v, err := extractField(doc, rule, loc)
		if err != nil {
			errs = append(errs, &FieldError{Key: rule.Key, Section: rule.Section, Row: rule.Row, Err: err})
			continue
		}
		metrics[rule.Key] = v
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return metrics, nil
}

func extractField(doc *goquery.Document, rule device.FieldRule, loc Locator) (float64, error) {
	text, err := loc.LocateFieldValue(doc, rule.Section, rule.Row)
	if err != nil {
		return 0, err
	}
	return ParseLeadingNumber(text)
}
