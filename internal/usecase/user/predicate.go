package user

import (
	"fmt"

	"github.com/samber/lo"

	domain "user-query-service/internal/domain/user"
	apperrors "user-query-service/pkg/errors"
)

// Predicate decides whether a user is kept by FilterByAll.
type Predicate func(u domain.User) bool

// Mapper renders a user as a string for JoinWith.
type Mapper func(u domain.User) string

// AllOf combines predicates with logical AND. With no predicates every user passes.
func AllOf(predicates ...Predicate) Predicate {
	mustHavePredicates("AllOf", predicates)
	return func(u domain.User) bool {
		return lo.EveryBy(predicates, func(p Predicate) bool {
			return p(u)
		})
	}
}

// OlderThan keeps users whose age is strictly greater than age.
func OlderThan(age int) Predicate {
	return func(u domain.User) bool {
		return u.Age > age
	}
}

// HasPrivilege keeps users holding p.
func HasPrivilege(p domain.Privilege) Predicate {
	return func(u domain.User) bool {
		return u.HasPrivilege(p)
	}
}

// LastNameIs keeps users with exactly the given last name.
func LastNameIs(name string) Predicate {
	return func(u domain.User) bool {
		return u.LastName == name
	}
}

// FullName renders "First Last".
func FullName(u domain.User) string {
	return u.FullName()
}

func mustHavePredicates(op string, predicates []Predicate) {
	for i, p := range predicates {
		if p == nil {
			panic(apperrors.NewPreconditionError(op, fmt.Sprintf("predicate at index %d is nil", i)))
		}
	}
}
