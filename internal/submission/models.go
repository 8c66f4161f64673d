package submission

import (
	"github.com/orbytrixx/orbytrixx/internal/form"
)

const (
	// DefaultSubject is the mail subject the endpoint forwards applications with.
	DefaultSubject = "New Career Application — Orbytrixx"

	// DefaultFromName is the sender name shown in the forwarded mail.
	DefaultFromName = "Orbytrixx Careers"
)

// Payload is the JSON body of a Careers application
type Payload struct {
	AccessKey string `json:"access_key"`
	Subject   string `json:"subject"`
	FromName  string `json:"from_name"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Portfolio string `json:"portfolio"`
	Summary   string `json:"summary"`
}

// Response is the JSON body returned by the endpoint
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PayloadFromValues builds the request body from a Careers record. Values
// are sent as stored; the phone is sent as "<dial code> <digits>". Access
// key, subject and sender are filled in by the Client.
func PayloadFromValues(values form.Values) Payload {
	return Payload{
		Name:      values[form.FieldName],
		Email:     values[form.FieldEmail],
		Phone:     FormatPhone(values[form.FieldCountryCode], values[form.FieldPhone]),
		Company:   values[form.FieldCompany],
		Role:      values[form.FieldRole],
		Portfolio: values[form.FieldPortfolio],
		Summary:   values[form.FieldSummary],
	}
}

// FormatPhone joins a dial code and the national digits with one space.
func FormatPhone(code, digits string) string {
	return code + " " + digits
}
