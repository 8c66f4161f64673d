package form

import (
	"regexp"
	"strings"

	"github.com/orbytrixx/orbytrixx/internal/dialcode"
)

// Field names a form input.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldCountryCode Field = "countryCode"
	FieldPhone       Field = "phone"
	FieldCompany     Field = "company"
	FieldRole        Field = "role"
	FieldPortfolio   Field = "portfolio"
	FieldSummary     Field = "summary"
	FieldMessage     Field = "message"
)

// PhoneDigits is the exact length of a valid phone number.
const PhoneDigits = 10

// RoleSentinel is the placeholder option of the role select.
const RoleSentinel = "CHOOSE MISSION"

// Roles are the selectable Careers roles, sentinel first.
var Roles = []string{
	RoleSentinel,
	"FRONTEND ENGINEER",
	"AI ARCHITECT",
	"MOTION DESIGNER",
	"GENERAL INQUIRY",
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Variant selects which form a Session models.
type Variant int

const (
	Contact Variant = iota
	Careers
)

// String returns the variant name used in logs.
func (v Variant) String() string {
	switch v {
	case Contact:
		return "contact"
	case Careers:
		return "careers"
	default:
		return "unknown"
	}
}

// Values maps a field to its current string value.
type Values map[Field]string

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Errors maps a field to a human-readable validation message.
type Errors map[Field]string

// Fields returns the inputs of a variant in display order.
func (v Variant) Fields() []Field {
	switch v {
	case Careers:
		return []Field{FieldName, FieldEmail, FieldCountryCode, FieldPhone, FieldCompany, FieldRole, FieldPortfolio, FieldSummary}
	default:
		return []Field{FieldName, FieldEmail, FieldCountryCode, FieldPhone, FieldCompany, FieldMessage}
	}
}

// Has reports whether f belongs to the variant.
func (v Variant) Has(f Field) bool {
	for _, candidate := range v.Fields() {
		if candidate == f {
			return true
		}
	}
	return false
}

// Defaults returns the initial record of a variant.
func (v Variant) Defaults() Values {
	values := make(Values)
	for _, f := range v.Fields() {
		values[f] = ""
	}
	values[FieldCountryCode] = dialcode.DefaultDialCode
	if v == Careers {
		values[FieldRole] = RoleSentinel
	}
	return values
}

// Label returns the display label of a field for a variant.
func (v Variant) Label(f Field) string {
	switch f {
	case FieldName:
		return "Full Name"
	case FieldEmail:
		return "Email Address"
	case FieldCountryCode:
		return "Country Code"
	case FieldPhone:
		return "Phone Number"
	case FieldCompany:
		if v == Contact {
			return "Company (Optional)"
		}
		return "Current Company"
	case FieldRole:
		return "Role"
	case FieldPortfolio:
		return "Portfolio / GitHub"
	case FieldSummary:
		return "Performance Summary"
	case FieldMessage:
		return "Project Overview"
	default:
		return string(f)
	}
}

// NormalizePhone strips non-digits and keeps at most PhoneDigits digits.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > PhoneDigits {
		digits = digits[:PhoneDigits]
	}
	return digits
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate computes the error map of a variant for the given values.
// It is a pure function of its inputs.
func (v Variant) Validate(values Values) Errors {
	errs := make(Errors)

	if strings.TrimSpace(values[FieldName]) == "" {
		errs[FieldName] = "Full name is required"
	}

	email := values[FieldEmail]
	if email == "" {
		errs[FieldEmail] = "Email is required"
	} else if !ValidEmail(email) {
		if v == Careers {
			errs[FieldEmail] = "Enter a valid email (e.g., name@domain.com)."
		} else {
			errs[FieldEmail] = "Please enter a valid email address (e.g., hello@domain.com)."
		}
	}

	if values[FieldCountryCode] == "" {
		if v == Careers {
			errs[FieldCountryCode] = "Code required"
		} else {
			errs[FieldCountryCode] = "Select code"
		}
	}

	phone := values[FieldPhone]
	if phone == "" {
		errs[FieldPhone] = "Phone number is required"
	} else if !phonePattern.MatchString(phone) {
		errs[FieldPhone] = "Please enter a valid 10-digit phone number."
	}

	switch v {
	case Careers:
		if strings.TrimSpace(values[FieldCompany]) == "" {
			errs[FieldCompany] = "Current company is required"
		}
		if values[FieldRole] == RoleSentinel || values[FieldRole] == "" {
			errs[FieldRole] = "Please select a role"
		}
		if strings.TrimSpace(values[FieldPortfolio]) == "" {
			errs[FieldPortfolio] = "Portfolio link is required"
		}
		if strings.TrimSpace(values[FieldSummary]) == "" {
			errs[FieldSummary] = "Performance summary is required"
		}
	case Contact:
		if strings.TrimSpace(values[FieldMessage]) == "" {
			errs[FieldMessage] = "Project overview is required"
		}
	}

	return errs
}
