package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/hopenndrive/admin/core"
)

var (
	// emailRegex checks the simple local@domain.tld shape; real deliverability
	// is the mail provider's problem.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// password policy
	pwdMinLen     = 8
	pwdMinLenTag  = "pwdminlen"
	pwdMinLenText = fmt.Sprintf("password must contain at least %d characters", pwdMinLen)

	pwdComplexityTag  = "pwdcplx"
	pwdComplexityText = "password must contain at least 1 uppercase character, 1 lowercase character, 1 digit and 1 special character"
	specialRegex      = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	pwdMaxSim      = .7
	pwdAttrSimTag  = "pwdtoosim"
	pwdAttrSimText = "password cannot be similar to user attributes"
)

func init() {
	// register validators
	core.Validate.RegisterStructValidation(userStructValidation, NewUser{})
	core.Validate.RegisterStructValidation(userStructValidation, ResetUserPassword{})
	core.RegisterCustomTranslation(pwdMinLenTag, pwdMinLenText)
	core.RegisterCustomTranslation(pwdComplexityTag, pwdComplexityText)
	core.RegisterCustomTranslation(pwdAttrSimTag, pwdAttrSimText)
}

// IsValidEmail applies the client-side email shape check.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// PasswordStrength reports which of the password policy's five conditions a
// candidate password satisfies. All five must hold.
type PasswordStrength struct {
	MinLength bool
	Uppercase bool
	Lowercase bool
	Digit     bool
	Special   bool
}

func (ps PasswordStrength) OK() bool {
	return ps.MinLength && ps.Uppercase && ps.Lowercase && ps.Digit && ps.Special
}

func CheckPasswordStrength(pwd string) PasswordStrength {
	ps := PasswordStrength{
		MinLength: len(pwd) >= pwdMinLen,
		Special:   specialRegex.MatchString(pwd),
	}
	for _, char := range pwd {
		if !ps.Uppercase && unicode.IsUpper(char) {
			ps.Uppercase = true
		}
		if !ps.Lowercase && unicode.IsLower(char) {
			ps.Lowercase = true
		}
		if !ps.Digit && unicode.IsDigit(char) {
			ps.Digit = true
		}
	}
	return ps
}

// userStructValidation does struct level validation on NewUser and
// ResetUserPassword structs.
func userStructValidation(sl validator.StructLevel) {
	switch data := sl.Current().Interface().(type) {
	case NewUser:
		validatePassword(data.Password, data.Email, sl)
	case ResetUserPassword:
		validatePassword(data.Password, "", sl)
	}
}

// validatePassword applies the password policy:
// - minLen: 8
// - complexity: 1 upper, 1 lower, 1 digit, 1 special
// - no user attrs similarity
func validatePassword(pwd, email string, sl validator.StructLevel) {
	reportErr := func(tag string) {
		sl.ReportError(pwd, "password", "Password", tag, "")
	}

	ps := CheckPasswordStrength(pwd)
	if !ps.MinLength {
		reportErr(pwdMinLenTag)
		return
	}
	if !ps.OK() {
		reportErr(pwdComplexityTag)
		return
	}

	if email != "" {
		ratio := difflib.NewMatcher(strings.Split(pwd, ""), strings.Split(email, "")).QuickRatio()
		if ratio >= pwdMaxSim {
			reportErr(pwdAttrSimTag)
		}
	}
}
