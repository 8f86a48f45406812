package filter

import (
	"net/url"
	"strings"

	"github.com/salestrace/salestrace/internal/datefilter"
	"github.com/salestrace/salestrace/internal/transaction"
)

// Query parameter keys of the persisted filter representation.
const (
	searchKey     = "search"
	dateKey       = "date"
	salesTypesKey = "salesTypes"
)

// Store owns the filter state for one session. It is seeded once from the
// persisted key/value representation; every setter updates the in-memory
// state and returns the serialized form of the complete triple in the same
// call, so state and persisted representation never diverge.
//
// Store is not safe for concurrent use; it belongs to a single session.
type Store struct {
	filters Filters
}

// NewStore seeds a store from a persisted representation. An absent date
// key falls back to the today filter. Malformed or unrecognized sales-type
// tokens are silently dropped rather than rejecting the whole set.
func NewStore(values url.Values) *Store {
	filters := Filters{
		Search: values.Get(searchKey),
		Date:   datefilter.ModeToday,
	}

	if date := values.Get(dateKey); date != "" {
		filters.Date = datefilter.Mode(date)
	}

	if raw := values.Get(salesTypesKey); raw != "" {
		filters.SalesTypes = parseSalesTypes(raw)
	}

	return &Store{filters: filters}
}

// Filters returns the current snapshot. The slice is copied so callers
// cannot mutate store internals.
func (s *Store) Filters() Filters {
	f := s.filters
	f.SalesTypes = append([]transaction.SalesType(nil), s.filters.SalesTypes...)
	return f
}

// SetSearch updates the free-text query and returns the new persisted
// representation.
func (s *Store) SetSearch(search string) url.Values {
	s.filters.Search = search
	return s.Values()
}

// SetDate updates the date filter mode and returns the new persisted
// representation.
func (s *Store) SetDate(mode datefilter.Mode) url.Values {
	s.filters.Date = mode
	return s.Values()
}

// SetSalesTypes updates the sales-type selection and returns the new
// persisted representation. A selection containing the wildcard is
// normalized to the empty, unrestricted selection so the two encodings
// cannot diverge downstream.
func (s *Store) SetSalesTypes(salesTypes []transaction.SalesType) url.Values {
	s.filters.SalesTypes = normalizeSalesTypes(salesTypes)
	return s.Values()
}

// Values serializes the complete current triple. A field at its empty value
// is omitted entirely instead of written as an empty marker, keeping the
// representation minimal and re-parseable.
func (s *Store) Values() url.Values {
	values := url.Values{}

	if s.filters.Search != "" {
		values.Set(searchKey, s.filters.Search)
	}

	if s.filters.Date != datefilter.ModeNone {
		values.Set(dateKey, string(s.filters.Date))
	}

	if len(s.filters.SalesTypes) > 0 {
		tokens := make([]string, 0, len(s.filters.SalesTypes))
		for _, t := range s.filters.SalesTypes {
			tokens = append(tokens, string(t))
		}
		values.Set(salesTypesKey, strings.Join(tokens, ","))
	}

	return values
}

func parseSalesTypes(raw string) []transaction.SalesType {
	var salesTypes []transaction.SalesType

	for _, token := range strings.Split(raw, ",") {
		switch transaction.SalesType(token) {
		case transaction.SalesTypePaymentLink, transaction.SalesTypeTerminal, transaction.SalesTypeAll:
			salesTypes = append(salesTypes, transaction.SalesType(token))
		default:
			// unknown tokens are dropped, not an error
		}
	}

	return normalizeSalesTypes(salesTypes)
}

func normalizeSalesTypes(salesTypes []transaction.SalesType) []transaction.SalesType {
	for _, t := range salesTypes {
		if t == transaction.SalesTypeAll {
			return nil
		}
	}

	return append([]transaction.SalesType(nil), salesTypes...)
}
