package rtr

import (
	"net/url"
	"strconv"
	"strings"
)

// Matcher is the comparison applied between a filter field and its value.
// The value is the short mnemonic used in the query parameter name.
type Matcher string

// Supported matchers.
const (
	MatcherEquals             Matcher = "eq"
	MatcherNotEquals          Matcher = "ne"
	MatcherNotLike            Matcher = "not_like"
	MatcherGreaterThan        Matcher = "gt"
	MatcherLessThan           Matcher = "lt"
	MatcherLessThanOrEqual    Matcher = "lte"
	MatcherGreaterThanOrEqual Matcher = "gte"
	MatcherNull               Matcher = "null"
	MatcherNotNull            Matcher = "not_null"
	MatcherLike               Matcher = "like"
	MatcherIn                 Matcher = "in"
	MatcherNotIn              Matcher = "not_in"
)

var matchersByName = map[string]Matcher{
	"EQUALS":                   MatcherEquals,
	"NOT_EQUALS":               MatcherNotEquals,
	"NOT_LIKE":                 MatcherNotLike,
	"GREATER_THAN":             MatcherGreaterThan,
	"LESS_THAN":                MatcherLessThan,
	"LESS_THAN_OR_EQUAL_TO":    MatcherLessThanOrEqual,
	"GREATER_THAN_OR_EQUAL_TO": MatcherGreaterThanOrEqual,
	"NULL":                     MatcherNull,
	"NOT_NULL":                 MatcherNotNull,
	"LIKE":                     MatcherLike,
	"IN":                       MatcherIn,
	"NOT_IN":                   MatcherNotIn,
}

// MatcherByName looks up a matcher by its long name (e.g. "GREATER_THAN").
func MatcherByName(name string) (Matcher, bool) {
	m, ok := matchersByName[strings.ToUpper(name)]

	return m, ok
}

// ParseMatcher accepts either the short mnemonic ("lt") or the long name
// ("LESS_THAN") of a matcher.
func ParseMatcher(name string) (Matcher, bool) {
	for _, m := range matchersByName {
		if string(m) == strings.ToLower(name) {
			return m, true
		}
	}

	return MatcherByName(name)
}

// Filter is a single field/matcher/value constraint of a list query.
//
// A filter carries either a single Value or a sequence in Values; when
// Values is non-nil it takes precedence.
type Filter struct {
	Field   string
	Matcher Matcher
	Value   string
	Values  []string
}

// paramName returns the query parameter name the filter is sent under.
func (f Filter) paramName() string {
	if f.Matcher == "" || f.Matcher == MatcherEquals {
		return f.Field
	}

	return f.Field + ":" + string(f.Matcher)
}

// ListQuery describes a single page of a filtered and sorted collection.
// Nil fields are not sent.
type ListQuery struct {
	Limit   *int
	Offset  *int
	Order   []string
	Total   *bool
	Fields  []string
	Q       *string
	Filters []Filter
}

// NewListQuery creates an empty list query.
func NewListQuery() *ListQuery {
	return &ListQuery{}
}

// WithLimit sets the page size.
func (q *ListQuery) WithLimit(limit int) *ListQuery {
	q.Limit = &limit

	return q
}

// WithOffset sets the page offset.
func (q *ListQuery) WithOffset(offset int) *ListQuery {
	q.Offset = &offset

	return q
}

// OrderBy appends sort fields. Prefix a field with "-" to sort descending.
func (q *ListQuery) OrderBy(fields ...string) *ListQuery {
	q.Order = append(q.Order, fields...)

	return q
}

// WithTotal requests an exact total count alongside the page.
func (q *ListQuery) WithTotal(total bool) *ListQuery {
	q.Total = &total

	return q
}

// WithFields restricts the attributes returned for each entity.
func (q *ListQuery) WithFields(fields ...string) *ListQuery {
	q.Fields = append(q.Fields, fields...)

	return q
}

// WithSearch sets the free text search term.
func (q *ListQuery) WithSearch(term string) *ListQuery {
	q.Q = &term

	return q
}

// Where adds a filter with a single value.
func (q *ListQuery) Where(field string, matcher Matcher, value string) *ListQuery {
	q.Filters = append(q.Filters, Filter{Field: field, Matcher: matcher, Value: value})

	return q
}

// WhereIn adds a set membership filter.
func (q *ListQuery) WhereIn(field string, values ...string) *ListQuery {
	q.Filters = append(q.Filters, Filter{Field: field, Matcher: MatcherIn, Values: values})

	return q
}

// Params is an insertion-ordered map of query parameters. A parameter holds
// either a scalar or a sequence; sequences are sent as repeated keys.
type Params struct {
	keys   []string
	values map[string]*paramValue
}

type paramValue struct {
	items []string
	multi bool
}

// NewParams creates an empty parameter map.
func NewParams() *Params {
	return &Params{values: make(map[string]*paramValue)}
}

// Len returns the number of distinct parameter names.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// Get returns the value stored under name: a string for scalars and a
// []string for sequences.
func (p *Params) Get(name string) (any, bool) {
	v, ok := p.values[name]
	if !ok {
		return nil, false
	}

	if v.multi {
		items := make([]string, len(v.items))
		copy(items, v.items)

		return items, true
	}

	return v.items[0], true
}

// Has reports whether name is present.
func (p *Params) Has(name string) bool {
	_, ok := p.values[name]

	return ok
}

// ToMap returns a copy of the parameters as a plain map.
func (p *Params) ToMap() map[string]any {
	out := make(map[string]any, len(p.keys))
	for _, k := range p.keys {
		out[k], _ = p.Get(k)
	}

	return out
}

// Set stores a scalar, replacing any previous value.
func (p *Params) Set(name, value string) {
	p.put(name, &paramValue{items: []string{value}})
}

// SetSequence stores a sequence, replacing any previous value.
func (p *Params) SetSequence(name string, values []string) {
	items := make([]string, len(values))
	copy(items, values)
	p.put(name, &paramValue{items: items, multi: true})
}

// Add accumulates a value under name. The first value is kept as a scalar,
// the second turns the parameter into a two element sequence and later
// values are appended. Adding no values to a present parameter is a no-op.
func (p *Params) Add(name string, values ...string) {
	v, ok := p.values[name]
	if ok && len(values) == 0 {
		return
	}

	if !ok {
		if len(values) == 1 {
			p.Set(name, values[0])
		} else {
			p.SetSequence(name, values)
		}

		return
	}

	v.items = append(v.items, values...)
	v.multi = true
}

func (p *Params) put(name string, v *paramValue) {
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}

	p.values[name] = v
}

// Values converts the parameters to url.Values, one entry per sequence item.
func (p *Params) Values() url.Values {
	values := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		values[k] = append(values[k], p.values[k].items...)
	}

	return values
}

// Merge adds every entry of values that is not already present.
func (p *Params) Merge(values url.Values) {
	for k, vs := range values {
		if p.Has(k) || len(vs) == 0 {
			continue
		}

		if len(vs) == 1 {
			p.Set(k, vs[0])
		} else {
			p.SetSequence(k, vs)
		}
	}
}

// Encode renders the query string in insertion order with sequences as
// repeated keys (name=a&name=b).
func (p *Params) Encode() string {
	var buf strings.Builder

	for _, k := range p.keys {
		key := url.QueryEscape(k)
		for _, item := range p.values[k].items {
			if buf.Len() > 0 {
				buf.WriteByte('&')
			}

			buf.WriteString(key)
			buf.WriteByte('=')
			buf.WriteString(url.QueryEscape(item))
		}
	}

	return buf.String()
}

// Encode converts a list query into query parameters. A nil query yields an
// empty map. Scalars are copied when set; filters are folded in afterwards,
// so a filter whose parameter name equals a scalar name accumulates onto it.
func Encode(query *ListQuery) *Params {
	params := NewParams()
	if query == nil {
		return params
	}

	if query.Limit != nil {
		params.Set("limit", strconv.Itoa(*query.Limit))
	}

	if query.Offset != nil {
		params.Set("offset", strconv.Itoa(*query.Offset))
	}

	if query.Order != nil {
		params.SetSequence("order", query.Order)
	}

	if query.Total != nil {
		params.Set("total", strconv.FormatBool(*query.Total))
	}

	if query.Fields != nil {
		params.SetSequence("fields", query.Fields)
	}

	if query.Q != nil {
		params.Set("q", *query.Q)
	}

	for _, filter := range query.Filters {
		name := filter.paramName()

		switch {
		case filter.Values == nil:
			params.Add(name, filter.Value)
		case filter.Matcher == MatcherIn:
			// Values containing commas are not escaped.
			params.Add(name, strings.Join(filter.Values, ","))
		default:
			params.Add(name, filter.Values...)
		}
	}

	return params
}
