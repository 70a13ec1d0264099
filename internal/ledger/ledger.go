// Package ledger manages the ordered collection of projects and its
// derived pending/paid totals. Operations take a ledger value and
// return the updated value; the caller owns the authoritative copy
// and is responsible for persisting it after each transition.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ratecard/internal/model"
)

// ValidationError reports a rejected project submission. The ledger
// is unchanged when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Add appends a new pending project priced at the current hourly rate.
// The name must be non-blank and hours must be a positive finite
// number; otherwise a ValidationError is returned with the ledger
// unchanged.
func Add(l model.Ledger, name string, hours, rate float64) (model.Ledger, model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return l, model.Project{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return l, model.Project{}, &ValidationError{Field: "hours", Reason: "must be a number"}
	}
	if hours <= 0 {
		return l, model.Project{}, &ValidationError{Field: "hours", Reason: "must be greater than zero"}
	}

	p := model.Project{
		ID:     nextID(l),
		Name:   name,
		Hours:  hours,
		Price:  hours * rate,
		Status: model.StatusPending,
	}

	out := clone(l)
	out.Projects = append(out.Projects, p)
	return out, p, nil
}

// nextID assigns a unique, monotonically increasing project id.
// Ids start from the current unix millisecond but always exceed every
// existing id, so rapid adds and restored old states never collide.
func nextID(l model.Ledger) int64 {
	id := time.Now().UnixMilli()
	for _, p := range l.Projects {
		if p.ID >= id {
			id = p.ID + 1
		}
	}
	return id
}

// Delete removes the project with the given id, preserving the order
// of the rest. Unknown ids are a no-op.
func Delete(l model.Ledger, id int64) model.Ledger {
	out := model.Ledger{Projects: make([]model.Project, 0, len(l.Projects))}
	for _, p := range l.Projects {
		if p.ID != id {
			out.Projects = append(out.Projects, p)
		}
	}
	return out
}

// Toggle flips the payment status of the project with the given id.
// Unknown ids are a no-op: the id came from a rendered snapshot and
// the project may have been deleted since.
func Toggle(l model.Ledger, id int64) model.Ledger {
	out := clone(l)
	for i, p := range out.Projects {
		if p.ID == id {
			out.Projects[i].Status = p.Status.Toggle()
			break
		}
	}
	return out
}

// Reprice recomputes every project's price at the given hourly rate.
// Callers must invoke this whenever the rate changes; nothing but
// prices is touched.
func Reprice(l model.Ledger, rate float64) model.Ledger {
	out := clone(l)
	for i, p := range out.Projects {
		out.Projects[i].Price = p.Hours * rate
	}
	return out
}

// Totals sums project prices partitioned by payment status. Totals
// are always recomputed from the full sequence, never accumulated
// incrementally.
func Totals(l model.Ledger) (pending, paid float64) {
	for _, p := range l.Projects {
		if p.Status == model.StatusPaid {
			paid += p.Price
		} else {
			pending += p.Price
		}
	}
	return pending, paid
}

func clone(l model.Ledger) model.Ledger {
	out := model.Ledger{}
	if len(l.Projects) > 0 {
		out.Projects = make([]model.Project, len(l.Projects))
		copy(out.Projects, l.Projects)
	}
	return out
}
