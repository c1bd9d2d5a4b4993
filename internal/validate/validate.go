// Package validate runs declarative per-route rule tables against incoming
// requests before any handler logic. Each route declares an ordered list of
// field rules; the engine evaluates all of them, collects every failing
// field, and short-circuits with a single structured rejection when any
// fail. On success the normalized field values are passed down via the
// request context instead of mutating the request.
package validate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/staffdesk-be/internal/respond"
)

// Location names where a field is read from.
type Location string

const (
	Body  Location = "body"
	Param Location = "param"
	Query Location = "query"
)

// Constraint is one predicate over a field value, paired with the message
// reported when it fails.
type Constraint struct {
	Check    func(v any) bool
	Message  string
	required bool
}

// Rule declares the ordered constraints for a single field. Rules are
// immutable: declared once per route, applied per request.
type Rule struct {
	Field       string
	In          Location
	Optional    bool
	Constraints []Constraint
	Transform   func(v any) any
}

// Values holds the validated (and possibly normalized) fields of a request.
type Values map[string]any

// Has reports whether the field was present and validated.
func (v Values) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// String returns the field as a string, or "" when absent or not a string.
func (v Values) String(field string) string {
	s, _ := v[field].(string)
	return s
}

// Float returns the field as a float64. JSON numbers arrive as float64;
// numeric strings are converted.
func (v Values) Float(field string) float64 {
	f, _ := asFloat(v[field])
	return f
}

// Apply evaluates every rule in declared order. All fields are always
// checked (failures aggregate rather than stopping at the first field), but
// within one field the first failing constraint's message wins and the rest
// are skipped. Absent optional fields are skipped entirely.
func Apply(r *http.Request, body map[string]any, rules []Rule) (Values, []respond.FieldError) {
	values := Values{}
	var failures []respond.FieldError

	for _, rule := range rules {
		val, present := extract(r, body, rule)
		if !present && rule.Optional {
			continue
		}

		failed := false
		for _, c := range rule.Constraints {
			if !c.Check(val) {
				failures = append(failures, respond.FieldError{Field: rule.Field, Message: c.Message})
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		if rule.Transform != nil {
			val = rule.Transform(val)
		}
		values[rule.Field] = val
	}

	return values, failures
}

func extract(r *http.Request, body map[string]any, rule Rule) (any, bool) {
	switch rule.In {
	case Param:
		s := chi.URLParam(r, rule.Field)
		return s, s != ""
	case Query:
		q := r.URL.Query()
		return q.Get(rule.Field), q.Has(rule.Field)
	default:
		v, ok := body[rule.Field]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}
}

type contextKey string

const valuesKey = contextKey("validatedValues")

// WithValues merges the given values into any already attached by an
// earlier rule table on the same request.
func WithValues(ctx context.Context, values Values) context.Context {
	if existing := ValuesFrom(ctx); existing != nil {
		for k, v := range existing {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
	}
	return context.WithValue(ctx, valuesKey, values)
}

// ValuesFrom returns the validated values attached to the request, if any.
func ValuesFrom(ctx context.Context) Values {
	values, _ := ctx.Value(valuesKey).(Values)
	return values
}

// Check returns middleware that runs the given rule table against each
// request. On any failure it short-circuits with a 400 rejection listing
// every failing field; on success the validated values are attached to the
// request context and the next handler runs.
func Check(rules []Rule) func(http.Handler) http.Handler {
	readsBody := false
	for _, rule := range rules {
		if rule.In == Body {
			readsBody = true
			break
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			if readsBody && r.Body != nil {
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
					respond.Fail(w, http.StatusBadRequest, "Invalid request body")
					return
				}
			}

			values, failures := Apply(r, body, rules)
			if len(failures) > 0 {
				respond.FailFields(w, http.StatusBadRequest, "Validation failed", failures)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithValues(r.Context(), values)))
		})
	}
}
