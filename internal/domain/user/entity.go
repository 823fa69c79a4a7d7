package user

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"

	apperrors "user-query-service/pkg/errors"
)

// Privilege is a permission tag held by a user.
type Privilege string

const (
	PrivilegeCreate Privilege = "CREATE"
	PrivilegeRead   Privilege = "READ"
	PrivilegeUpdate Privilege = "UPDATE"
	PrivilegeDelete Privilege = "DELETE"
)

// Privileges lists every known privilege in declaration order.
func Privileges() []Privilege {
	return []Privilege{PrivilegeCreate, PrivilegeRead, PrivilegeUpdate, PrivilegeDelete}
}

// String implements fmt.Stringer.
func (p Privilege) String() string {
	return string(p)
}

// Valid reports whether p is one of the known privileges.
func (p Privilege) Valid() bool {
	return lo.Contains(Privileges(), p)
}

// ParsePrivilege converts a case-insensitive tag such as "update" into a Privilege.
func ParsePrivilege(s string) (Privilege, error) {
	p := Privilege(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", apperrors.NewValidationError("privilege", fmt.Sprintf("unknown privilege %q", s))
	}
	return p, nil
}

// User represents a user record the query service reads.
type User struct {
	ID         uuid.UUID   // ID is assigned by NewUser
	FirstName  string      `validate:"required,max=100"`
	LastName   string      `validate:"required,max=100"`
	Age        int         `validate:"gte=0,lte=150"`
	Privileges []Privilege `validate:"dive,oneof=CREATE READ UPDATE DELETE"` // duplicates are kept as authored
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewUser builds a validated User with a fresh ID.
// The privileges slice is copied so later changes by the caller do not leak in.
func NewUser(firstName, lastName string, age int, privileges ...Privilege) (User, error) {
	u := User{
		ID:         uuid.New(),
		FirstName:  firstName,
		LastName:   lastName,
		Age:        age,
		Privileges: append([]Privilege(nil), privileges...),
	}

	if err := validate.Struct(u); err != nil {
		return User{}, formatValidationError(err)
	}
	return u, nil
}

// HasPrivilege reports whether the user holds p at least once.
func (u User) HasPrivilege(p Privilege) bool {
	return lo.Contains(u.Privileges, p)
}

// PrivilegeCount is the length of the privilege list, duplicates included.
func (u User) PrivilegeCount() int {
	return len(u.Privileges)
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// formatValidationError converts validator.ValidationErrors into a ValidationError
// carrying one human-readable message per failing field.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	violations := make([]apperrors.FieldViolation, 0, len(validationErrors))
	for _, e := range validationErrors {
		var msg string
		switch e.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", e.Field())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
		case "gte":
			msg = fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
		case "lte":
			msg = fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
		case "oneof":
			msg = fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", e.Field())
		}
		violations = append(violations, apperrors.FieldViolation{Field: e.Field(), Message: msg})
	}
	return apperrors.NewValidationErrors(violations)
}
