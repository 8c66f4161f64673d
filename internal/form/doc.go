// Package form models the lead-capture forms of the site: the Contact
// inquiry and the Careers application.
//
// A Session holds three pieces of state: the field values, the set of
// touched fields and the submission outcome. Validation errors are derived;
// Errors recomputes them from the values on every call, so they can never go
// stale.
//
// # Field Rules
//
//   - name: required (trimmed)
//   - email: required, local@domain.tld
//   - countryCode: required
//   - phone: required, exactly 10 digits (input is reduced to digits and
//     truncated to 10 on every SetField)
//   - company: required for Careers, optional for Contact
//   - role: Careers only, must not be the "CHOOSE MISSION" placeholder
//   - portfolio, summary: Careers only, required
//   - message: Contact only, required
//
// An error is shown for a field only after the field is touched:
//
//	if msg := session.VisibleError(form.FieldEmail); msg != "" {
//	    render(msg)
//	}
//
// # Submission
//
// The outcome moves NotSubmitted → Submitting → Submitted, or Submitting →
// Failed when the Careers endpoint rejects the application. Submit is a no-op
// returning ErrInvalid while errors remain, and returns ErrInFlight while a
// submission is pending.
//
//	session := form.NewCareers()
//	session.SetField(form.FieldName, "Ada")
//	...
//	if err := session.Submit(ctx, client); err != nil {
//	    alert(submission.AlertMessage(err))
//	}
//
// Callers that run the network call elsewhere (the TUI runs it inside a
// tea.Cmd) use Begin and Finish directly.
//
// Reset restores the default record, including values set with WithDefault,
// and clears the touched set. Values pre-filled with WithInitial are gone
// after a Reset.
package form
