package user

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	domain "user-query-service/internal/domain/user"
	apperrors "user-query-service/pkg/errors"
)

// averageAgeEmpty is returned by AverageAge when there is nothing to average.
const averageAgeEmpty = -1

// minRepeatedLastName is how often a last name must occur to compete in MostFrequentLastName.
const minRepeatedLastName = 2

// Service implements Usecase over in-memory slices.
// It never mutates its inputs and every result is freshly allocated.
type Service struct {
	log *zap.Logger // Logger for structured logging
}

var _ Usecase = (*Service)(nil)

// New creates a new Service. A nil logger disables logging.
func New(log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log}
}

// FirstNamesReverseSorted returns the first names sorted in descending byte order.
func (s *Service) FirstNamesReverseSorted(users []domain.User) []string {
	names := lo.Map(users, func(u domain.User, _ int) string {
		return u.FirstName
	})
	slices.SortStableFunc(names, func(a, b string) int {
		return cmp.Compare(b, a)
	})

	s.log.Debug("first names reverse sorted", zap.Int("users", len(users)))
	return names
}

// SortByAgeDescNameAsc orders users oldest first, breaking ties by first name.
func (s *Service) SortByAgeDescNameAsc(users []domain.User) []domain.User {
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b domain.User) int {
		if c := cmp.Compare(b.Age, a.Age); c != 0 {
			return c
		}
		return cmp.Compare(a.FirstName, b.FirstName)
	})

	s.log.Debug("users sorted by age and name", zap.Int("users", len(users)))
	return sorted
}

// DistinctPrivileges returns every privilege held by any user, in first-seen order.
func (s *Service) DistinctPrivileges(users []domain.User) []domain.Privilege {
	all := lo.FlatMap(users, func(u domain.User, _ int) []domain.Privilege {
		return u.Privileges
	})
	distinct := lo.Uniq(all)

	s.log.Debug("distinct privileges collected", zap.Int("users", len(users)), zap.Int("privileges", len(distinct)))
	return distinct
}

// FirstUpdateEligible returns the first user older than minAge who holds UPDATE.
func (s *Service) FirstUpdateEligible(users []domain.User, minAge int) (domain.User, bool) {
	found, ok := lo.Find(users, func(u domain.User) bool {
		return u.Age > minAge && u.HasPrivilege(domain.PrivilegeUpdate)
	})

	s.log.Debug("update eligible lookup", zap.Int("users", len(users)), zap.Int("min_age", minAge), zap.Bool("found", ok))
	return found, ok
}

// GroupByPrivilegeCount groups users by the length of their privilege list.
func (s *Service) GroupByPrivilegeCount(users []domain.User) map[int][]domain.User {
	groups := lo.GroupBy(users, domain.User.PrivilegeCount)

	s.log.Debug("users grouped by privilege count", zap.Int("users", len(users)), zap.Int("groups", len(groups)))
	return groups
}

// AverageAge returns the mean age, or -1 when users is empty.
func (s *Service) AverageAge(users []domain.User) float64 {
	if len(users) == 0 {
		s.log.Debug("average age of empty list")
		return averageAgeEmpty
	}

	total := lo.SumBy(users, func(u domain.User) int {
		return u.Age
	})
	avg := float64(total) / float64(len(users))

	s.log.Debug("average age computed", zap.Int("users", len(users)), zap.Float64("average", avg))
	return avg
}

// lastNameTally is one step of the MostFrequentLastName fold.
// A tally without a name stands for a tie seen so far.
type lastNameTally struct {
	name  string
	named bool
	count int
}

// MostFrequentLastName returns the last name occurring most often, considering
// only names seen at least twice.
//
// Candidates are folded pairwise in order of first appearance. When two
// tallies have the same count the fold carries an anonymous tally forward,
// which loses only to a strictly greater count later on. An anonymous result
// yields ("", false), as does an input with no repeated last name.
func (s *Service) MostFrequentLastName(users []domain.User) (string, bool) {
	counts := s.countLastNames(users)

	order := lo.Uniq(lo.Map(users, func(u domain.User, _ int) string {
		return u.LastName
	}))
	candidates := lo.FilterMap(order, func(name string, _ int) (lastNameTally, bool) {
		return lastNameTally{name: name, named: true, count: counts[name]}, counts[name] >= minRepeatedLastName
	})

	if len(candidates) == 0 {
		s.log.Debug("no repeated last name", zap.Int("users", len(users)))
		return "", false
	}

	winner := lo.Reduce(candidates[1:], func(acc lastNameTally, next lastNameTally, _ int) lastNameTally {
		switch {
		case acc.count > next.count:
			return acc
		case next.count > acc.count:
			return next
		default:
			return lastNameTally{count: acc.count}
		}
	}, candidates[0])

	s.log.Debug("most frequent last name",
		zap.Int("users", len(users)),
		zap.Int("candidates", len(candidates)),
		zap.Bool("tied", !winner.named),
		zap.Int("count", winner.count),
	)
	return winner.name, winner.named
}

// FilterByAll keeps users that satisfy every predicate. No predicates keeps everyone.
// A nil predicate panics with *errors.PreconditionError.
func (s *Service) FilterByAll(users []domain.User, predicates []Predicate) []domain.User {
	mustHavePredicates("FilterByAll", predicates)

	kept := lo.Filter(users, func(u domain.User, _ int) bool {
		return lo.EveryBy(predicates, func(p Predicate) bool {
			return p(u)
		})
	})

	s.log.Debug("users filtered",
		zap.Int("users", len(users)),
		zap.Int("predicates", len(predicates)),
		zap.Int("kept", len(kept)),
	)
	return kept
}

// JoinWith renders each user with mapper and joins the results with delimiter.
// A nil mapper panics with *errors.PreconditionError.
func (s *Service) JoinWith(users []domain.User, delimiter string, mapper Mapper) string {
	if mapper == nil {
		panic(apperrors.NewPreconditionError("JoinWith", "mapper is nil"))
	}

	parts := lo.Map(users, func(u domain.User, _ int) string {
		return mapper(u)
	})

	s.log.Debug("users joined", zap.Int("users", len(users)), zap.String("delimiter", delimiter))
	return strings.Join(parts, delimiter)
}

// GroupByPrivilege builds an inverted index from privilege to the users holding it.
// A user appears once per distinct privilege, in input order.
func (s *Service) GroupByPrivilege(users []domain.User) map[domain.Privilege][]domain.User {
	pairs := lo.FlatMap(users, func(u domain.User, _ int) []lo.Entry[domain.Privilege, domain.User] {
		return lo.Map(lo.Uniq(u.Privileges), func(p domain.Privilege, _ int) lo.Entry[domain.Privilege, domain.User] {
			return lo.Entry[domain.Privilege, domain.User]{Key: p, Value: u}
		})
	})

	grouped := lo.GroupBy(pairs, func(e lo.Entry[domain.Privilege, domain.User]) domain.Privilege {
		return e.Key
	})
	index := lo.MapValues(grouped, func(entries []lo.Entry[domain.Privilege, domain.User], _ domain.Privilege) []domain.User {
		return lo.Map(entries, func(e lo.Entry[domain.Privilege, domain.User], _ int) domain.User {
			return e.Value
		})
	})

	s.log.Debug("users indexed by privilege", zap.Int("users", len(users)), zap.Int("privileges", len(index)))
	return index
}

// CountByLastName returns how many users share each last name.
func (s *Service) CountByLastName(users []domain.User) map[string]int {
	counts := s.countLastNames(users)

	s.log.Debug("last names counted", zap.Int("users", len(users)), zap.Int("distinct", len(counts)))
	return counts
}

func (s *Service) countLastNames(users []domain.User) map[string]int {
	return lo.CountValuesBy(users, func(u domain.User) string {
		return u.LastName
	})
}
