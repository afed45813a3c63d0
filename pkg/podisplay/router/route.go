package router

import (
	"fmt"
	"net/url"
	"strings"
)

// Route maps a hash pattern to a view target.
//
// Pattern segments are separated by "/". A segment is either a literal,
// a required placeholder ({id}) or an optional placeholder (:tab:).
// Optional placeholders may only appear at the end of the pattern.
type Route struct {
	Name    string
	Pattern string
	Target  string
}

// Params carries placeholder values for a route.
type Params map[string]string

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentRequired
	segmentOptional
)

type segment struct {
	kind  segmentKind
	value string
}

type compiledRoute struct {
	Route
	segments []segment
}

func compile(r Route) (*compiledRoute, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: route has no name", ErrInvalidPattern)
	}

	c := &compiledRoute{Route: r}
	pattern := strings.Trim(r.Pattern, "/")
	if pattern == "" {
		return c, nil
	}

	seenOptional := false
	for _, part := range strings.Split(pattern, "/") {
		var seg segment
		switch {
		case part == "":
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, r.Pattern)
		case len(part) > 2 && part[0] == '{' && part[len(part)-1] == '}':
			seg = segment{kind: segmentRequired, value: part[1 : len(part)-1]}
		case len(part) > 2 && part[0] == ':' && part[len(part)-1] == ':':
			seg = segment{kind: segmentOptional, value: part[1 : len(part)-1]}
		default:
			seg = segment{kind: segmentLiteral, value: part}
		}

		if seenOptional && seg.kind != segmentOptional {
			return nil, fmt.Errorf("%w: %q has an optional placeholder before segment %q", ErrInvalidPattern, r.Pattern, part)
		}
		if seg.kind == segmentOptional {
			seenOptional = true
		}
		c.segments = append(c.segments, seg)
	}

	return c, nil
}

// match reports whether the normalized hash path fits the pattern.
func (c *compiledRoute) match(path string) (Params, bool) {
	var parts []string
	if path != "" {
		parts = strings.Split(path, "/")
	}

	if len(parts) > len(c.segments) {
		return nil, false
	}

	params := Params{}
	for i, seg := range c.segments {
		if i >= len(parts) {
			if seg.kind == segmentOptional {
				continue
			}
			return nil, false
		}

		part := parts[i]
		switch seg.kind {
		case segmentLiteral:
			if part != seg.value {
				return nil, false
			}
		default:
			if part == "" {
				return nil, false
			}
			value, err := url.PathUnescape(part)
			if err != nil {
				return nil, false
			}
			params[seg.value] = value
		}
	}

	return params, true
}

// build renders the pattern with params substituted.
func (c *compiledRoute) build(params Params) (string, error) {
	parts := make([]string, 0, len(c.segments))
	for _, seg := range c.segments {
		switch seg.kind {
		case segmentLiteral:
			parts = append(parts, seg.value)
		case segmentRequired:
			value, ok := params[seg.value]
			if !ok || value == "" {
				return "", fmt.Errorf("%w: route %q needs %q", ErrMissingParameter, c.Name, seg.value)
			}
			parts = append(parts, url.PathEscape(value))
		case segmentOptional:
			value, ok := params[seg.value]
			if !ok || value == "" {
				return strings.Join(parts, "/"), nil
			}
			parts = append(parts, url.PathEscape(value))
		}
	}
	return strings.Join(parts, "/"), nil
}

// NormalizeHash strips the leading "#", and any leading or trailing "/",
// from a raw location fragment. "", "#" and "#/" all normalize to "".
func NormalizeHash(raw string) string {
	return strings.Trim(strings.TrimPrefix(raw, "#"), "/")
}
