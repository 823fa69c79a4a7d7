package user

import domain "user-query-service/internal/domain/user"

// Usecase defines the read-only queries available over a list of users.
type Usecase interface {
	FirstNamesReverseSorted(users []domain.User) []string
	SortByAgeDescNameAsc(users []domain.User) []domain.User
	DistinctPrivileges(users []domain.User) []domain.Privilege
	FirstUpdateEligible(users []domain.User, minAge int) (domain.User, bool)
	GroupByPrivilegeCount(users []domain.User) map[int][]domain.User
	AverageAge(users []domain.User) float64
	MostFrequentLastName(users []domain.User) (string, bool)
	FilterByAll(users []domain.User, predicates []Predicate) []domain.User
	JoinWith(users []domain.User, delimiter string, mapper Mapper) string
	GroupByPrivilege(users []domain.User) map[domain.Privilege][]domain.User
	CountByLastName(users []domain.User) map[string]int
}
