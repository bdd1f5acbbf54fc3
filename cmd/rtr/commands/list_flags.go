package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
)

// listFlags holds the query flags shared by all list commands.
type listFlags struct {
	limit   int
	offset  int
	order   []string
	total   bool
	search  string
	fields  []string
	filters []string
}

func addListFlags(cmd *cobra.Command) *listFlags {
	flags := &listFlags{}

	cmd.Flags().IntVar(&flags.limit, "limit", constants.DefaultListLimit, "maximum number of results")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringSliceVar(&flags.order, "order", nil, "sort fields, prefix with - for descending")
	cmd.Flags().BoolVar(&flags.total, "total", false, "request the total number of results")
	cmd.Flags().StringVar(&flags.search, "q", "", "free text search")
	cmd.Flags().StringSliceVar(&flags.fields, "fields", nil, "attributes to return")
	cmd.Flags().StringArrayVar(&flags.filters, "filter", nil, "filter as field[:matcher]=value, repeatable")

	return flags
}

// query builds the list query described by the flags.
func (f *listFlags) query() (*rtr.ListQuery, error) {
	query := rtr.NewListQuery().WithLimit(f.limit)

	if f.offset > 0 {
		query.WithOffset(f.offset)
	}

	if len(f.order) > 0 {
		query.OrderBy(f.order...)
	}

	if f.total {
		query.WithTotal(true)
	}

	if f.search != "" {
		query.WithSearch(f.search)
	}

	if len(f.fields) > 0 {
		query.WithFields(f.fields...)
	}

	for _, raw := range f.filters {
		filter, err := parseFilter(raw)
		if err != nil {
			return nil, err
		}

		query.Filters = append(query.Filters, filter)
	}

	return query, nil
}

// parseFilter parses "field=value" or "field:matcher=value". The matcher may
// be given as mnemonic ("lt") or long name ("LESS_THAN"). Values of in
// filters are split on commas; a not_in value is sent as given.
func parseFilter(raw string) (rtr.Filter, error) {
	name, value, found := strings.Cut(raw, "=")
	if !found || name == "" {
		return rtr.Filter{}, fmt.Errorf("%w: %q", constants.ErrInvalidFilterFlag, raw)
	}

	field, matcherName, hasMatcher := strings.Cut(name, ":")
	if field == "" {
		return rtr.Filter{}, fmt.Errorf("%w: %q", constants.ErrInvalidFilterFlag, raw)
	}

	filter := rtr.Filter{Field: field, Matcher: rtr.MatcherEquals, Value: value}

	if hasMatcher {
		matcher, ok := rtr.ParseMatcher(matcherName)
		if !ok {
			return rtr.Filter{}, fmt.Errorf("%w: unknown matcher %q", constants.ErrInvalidFilterFlag, matcherName)
		}

		filter.Matcher = matcher
	}

	if filter.Matcher == rtr.MatcherIn {
		filter.Values = strings.Split(value, ",")
		filter.Value = ""
	}

	return filter, nil
}
