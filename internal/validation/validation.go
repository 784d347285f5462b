package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/kirkclark82/UGCC-APP/pkg/errors"
)

// MsgInvalidInput body that could not be decoded or checked
const MsgInvalidInput = "Invalid input data"

var (
	// blank: every Unicode separator plus \v and BOM, matching browser \s
	emailShape = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	usiPattern = regexp.MustCompile(`^[A-Za-z0-9]{6,10}$`)
)

// Messages client-facing text per failed rule for one request type.
type Messages struct {
	Required string
	Email    string
	Password string
	USI      string
}

var (
	RegisterMessages = Messages{
		Required: "All fields are required",
		Email:    "Please enter a valid email address",
		Password: "Password must be at least 6 characters long",
		USI:      "Student USI must be 6-10 alphanumeric characters",
	}
	LoginMessages = Messages{
		Required: "Email and password are required",
		Email:    "Please enter a valid email address",
	}
	ProfileMessages = Messages{
		Required: "Full name, email and Student USI are required",
		Email:    "Please enter a valid email address",
		USI:      "Student USI must be 6-10 alphanumeric characters",
	}
)

// rule priority; the first failed rule picks the message
var priority = []string{"required", "email_shape", "min", "usi"}

// Validator struct-tag validation with the registration rules installed.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with email_shape and usi registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration of a non-empty tag with a non-nil func cannot fail
	_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("usi", func(fl validator.FieldLevel) bool {
		return IsUSI(fl.Field().String())
	})
	return &Validator{v: v}
}

// IsEmail reports whether s has the local@domain.tld shape.
func IsEmail(s string) bool { return emailShape.MatchString(s) }

// IsUSI reports whether s is 6-10 ASCII letters or digits.
func IsUSI(s string) bool { return usiPattern.MatchString(s) }

// Check validates req and returns a validation error carrying the message
// of the highest-priority failed rule, or nil.
func (v *Validator) Check(req interface{}, msgs Messages) error {
	err := v.v.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return pkgerrors.Validation(MsgInvalidInput)
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.Tag()] = true
	}
	for _, tag := range priority {
		if !failed[tag] {
			continue
		}
		if msg := msgs.forTag(tag); msg != "" {
			return pkgerrors.Validation(msg)
		}
	}
	return pkgerrors.Validation(MsgInvalidInput)
}

func (m Messages) forTag(tag string) string {
	switch tag {
	case "required":
		return m.Required
	case "email_shape":
		return m.Email
	case "min":
		return m.Password
	case "usi":
		return m.USI
	}
	return ""
}
