package form

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalid is returned by Submit when the error map is not empty.
	ErrInvalid = errors.New("form has validation errors")

	// ErrInFlight is returned by Submit while a submission is pending.
	ErrInFlight = errors.New("submission already in progress")

	// ErrSubmitted is returned by Submit after the form reached Submitted.
	ErrSubmitted = errors.New("form already submitted")
)

// Outcome is the submission state of a Session.
type Outcome int

const (
	NotSubmitted Outcome = iota
	Submitting
	Submitted
	Failed
)

// String returns a lowercase name for logs.
func (o Outcome) String() string {
	switch o {
	case NotSubmitted:
		return "not_submitted"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Submitter delivers a completed form to an external endpoint.
type Submitter interface {
	Submit(ctx context.Context, values Values) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, values Values) error

// Submit calls f.
func (f SubmitterFunc) Submit(ctx context.Context, values Values) error {
	return f(ctx, values)
}

// Session is the transient state of one form: values, touched fields and
// submission outcome. Errors are never stored; they are recomputed from the
// values on every call.
//
// A Session is driven from a single event loop and is not safe for
// concurrent use.
type Session struct {
	variant  Variant
	defaults Values
	initial  Values
	values   Values
	touched  map[Field]bool
	outcome  Outcome
	lastErr  error
}

// Option configures a Session.
type Option func(*Session)

// WithDefault replaces a field of the default record. The value is restored
// by Reset; the configured dial code uses it.
func WithDefault(f Field, value string) Option {
	return func(s *Session) {
		if s.variant.Has(f) {
			s.defaults[f] = seedValue(f, value)
		}
	}
}

// WithInitial pre-fills a field of the first record only. Reset discards it,
// so a deep-link inquiry does not come back after "send another".
func WithInitial(f Field, value string) Option {
	return func(s *Session) {
		if s.variant.Has(f) {
			s.initial[f] = seedValue(f, value)
		}
	}
}

func seedValue(f Field, value string) string {
	if f == FieldPhone {
		return NormalizePhone(value)
	}
	return value
}

// New creates a session for the variant.
func New(v Variant, opts ...Option) *Session {
	s := &Session{
		variant:  v,
		defaults: v.Defaults(),
		initial:  make(Values),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.values = s.defaults.Clone()
	for f, v := range s.initial {
		s.values[f] = v
	}
	s.touched = make(map[Field]bool)
	return s
}

// NewContact creates a Contact inquiry session.
func NewContact(opts ...Option) *Session { return New(Contact, opts...) }

// NewCareers creates a Careers application session.
func NewCareers(opts ...Option) *Session { return New(Careers, opts...) }

// Variant returns the form kind.
func (s *Session) Variant() Variant { return s.variant }

// Value returns the stored value of f.
func (s *Session) Value(f Field) string { return s.values[f] }

// Values returns a copy of all stored values.
func (s *Session) Values() Values { return s.values.Clone() }

// SetField stores raw for f. Phone input keeps only its first ten digits.
// Fields outside the variant are ignored.
func (s *Session) SetField(f Field, raw string) {
	if !s.variant.Has(f) {
		return
	}
	if f == FieldPhone {
		raw = NormalizePhone(raw)
	}
	s.values[f] = raw
}

// SetCountryCode stores the dial code chosen in the selector. Choosing a
// code also marks the phone field touched so its error shows right away.
func (s *Session) SetCountryCode(code string) {
	s.values[FieldCountryCode] = code
	s.touched[FieldPhone] = true
}

// SetTouched marks f as having lost focus.
func (s *Session) SetTouched(f Field) {
	if s.variant.Has(f) {
		s.touched[f] = true
	}
}

// TouchAll marks every field touched.
func (s *Session) TouchAll() {
	for _, f := range s.variant.Fields() {
		s.touched[f] = true
	}
}

// Touched reports whether f has lost focus since the last reset.
func (s *Session) Touched(f Field) bool { return s.touched[f] }

// Errors recomputes the validation errors from the current values.
func (s *Session) Errors() Errors {
	return s.variant.Validate(s.values)
}

// VisibleError returns the error of f when f is both touched and invalid.
func (s *Session) VisibleError(f Field) string {
	if !s.touched[f] {
		return ""
	}
	return s.Errors()[f]
}

// IsValid reports whether there are no validation errors.
func (s *Session) IsValid() bool { return len(s.Errors()) == 0 }

// Outcome returns the submission state.
func (s *Session) Outcome() Outcome { return s.outcome }

// LastError returns the error of the last failed submission, if any.
func (s *Session) LastError() error { return s.lastErr }

// CanSubmit reports whether the submit action should be enabled.
func (s *Session) CanSubmit() bool {
	return s.outcome != Submitting && s.outcome != Submitted && s.IsValid()
}

// Begin moves a valid session into Submitting. Asynchronous callers pair it
// with Finish once the external call returns.
func (s *Session) Begin() error {
	switch s.outcome {
	case Submitting:
		return ErrInFlight
	case Submitted:
		return ErrSubmitted
	}
	if !s.IsValid() {
		return ErrInvalid
	}
	s.outcome = Submitting
	s.lastErr = nil
	return nil
}

// Finish records the result of the external call started after Begin.
// It is ignored unless the session is Submitting.
func (s *Session) Finish(err error) {
	if s.outcome != Submitting {
		return
	}
	if err != nil {
		s.outcome = Failed
		s.lastErr = err
		return
	}
	s.outcome = Submitted
	s.lastErr = nil
}

// Submit validates and submits the form.
//
// Contact sessions complete locally and never call sub. Careers sessions call
// sub exactly once; a nil sub completes locally as well. Invalid sessions are
// left untouched and ErrInvalid is returned.
func (s *Session) Submit(ctx context.Context, sub Submitter) error {
	if err := s.Begin(); err != nil {
		return err
	}
	if s.variant == Contact || sub == nil {
		s.Finish(nil)
		return nil
	}
	err := sub.Submit(ctx, s.values.Clone())
	s.Finish(err)
	return err
}

// NeedsNetwork reports whether Submit for this session calls the Submitter.
func (s *Session) NeedsNetwork() bool {
	return s.variant == Careers
}

// DismissFailure acknowledges a failed submission; values are kept.
func (s *Session) DismissFailure() {
	if s.outcome == Failed {
		s.outcome = NotSubmitted
	}
}

// Reset restores the default record, clears touched fields and returns the
// outcome to NotSubmitted.
func (s *Session) Reset() {
	s.values = s.defaults.Clone()
	s.touched = make(map[Field]bool)
	s.outcome = NotSubmitted
	s.lastErr = nil
}
