package queries

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery is the admin driver listing, optionally narrowed by status and
// by whether documents were verified.
type ListDriversQuery struct {
	actor    auth.Actor
	statuses []driver.Status
	verified *bool

	guard guard.ConstructorGuard
}

func NewListDriversQuery(actor auth.Actor, statuses []string, verified *bool) (ListDriversQuery, error) {
	parsed := make([]driver.Status, 0, len(statuses))
	var parseErrs []error
	for _, s := range statuses {
		status, err := driver.ParseStatus(s)
		if err != nil {
			parseErrs = append(parseErrs, err)
			continue
		}
		parsed = append(parsed, status)
	}
	if err := errors.Join(parseErrs...); err != nil {
		return ListDriversQuery{}, err
	}

	return ListDriversQuery{
		actor:    actor,
		statuses: parsed,
		verified: verified,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Actor() auth.Actor         { return q.actor }
func (q ListDriversQuery) Statuses() []driver.Status { return q.statuses }
func (q ListDriversQuery) Verified() *bool           { return q.verified }
