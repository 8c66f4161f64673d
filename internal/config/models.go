package config

import (
	"fmt"
	"time"

	"github.com/orbytrixx/orbytrixx/internal/dialcode"
	"github.com/orbytrixx/orbytrixx/internal/selector"
	"github.com/orbytrixx/orbytrixx/internal/submission"
)

// CurrentVersion is the only settings file version understood.
const CurrentVersion = 1

// Settings represents the entire user configuration file.
type Settings struct {
	Version    int                `yaml:"version"`
	Submission SubmissionSettings `yaml:"submission"`
	Display    DisplaySettings    `yaml:"display"`
}

// SubmissionSettings configures the Careers form relay.
type SubmissionSettings struct {
	Endpoint       string `yaml:"endpoint"`
	AccessKey      string `yaml:"access_key,omitempty"` // ORBYTRIXX_ACCESS_KEY wins when set
	Subject        string `yaml:"subject"`
	FromName       string `yaml:"from_name"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DisplaySettings configures the interactive UI.
type DisplaySettings struct {
	CompactBreakpoint int    `yaml:"compact_breakpoint"` // columns below which the compact layout is used
	SkipIntro         bool   `yaml:"skip_intro"`
	DefaultDialCode   string `yaml:"default_dial_code"`
	Mouse             bool   `yaml:"mouse"`
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: CurrentVersion,
		Submission: SubmissionSettings{
			Endpoint:       submission.DefaultEndpoint,
			Subject:        submission.DefaultSubject,
			FromName:       submission.DefaultFromName,
			TimeoutSeconds: int(submission.DefaultTimeout / time.Second),
		},
		Display: DisplaySettings{
			CompactBreakpoint: selector.CompactBreakpoint,
			DefaultDialCode:   dialcode.DefaultDialCode,
			Mouse:             true,
		},
	}
}

// Timeout returns the submission timeout as a duration.
func (s SubmissionSettings) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return submission.DefaultTimeout
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// NewClient builds a submission client from the settings.
func (s SubmissionSettings) NewClient() *submission.Client {
	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = submission.DefaultEndpoint
	}
	client := submission.NewClientWithURL(endpoint, s.AccessKey)
	client.SetSender(s.Subject, s.FromName)
	client.SetTimeout(s.Timeout())
	return client
}

// applyDefaults fills zero values left by a partial file.
func (s *Settings) applyDefaults() {
	def := NewSettings()
	if s.Submission.Endpoint == "" {
		s.Submission.Endpoint = def.Submission.Endpoint
	}
	if s.Submission.Subject == "" {
		s.Submission.Subject = def.Submission.Subject
	}
	if s.Submission.FromName == "" {
		s.Submission.FromName = def.Submission.FromName
	}
	if s.Submission.TimeoutSeconds == 0 {
		s.Submission.TimeoutSeconds = def.Submission.TimeoutSeconds
	}
	if s.Display.CompactBreakpoint == 0 {
		s.Display.CompactBreakpoint = def.Display.CompactBreakpoint
	}
	if s.Display.DefaultDialCode == "" {
		s.Display.DefaultDialCode = def.Display.DefaultDialCode
	}
}

// Validate checks values that would otherwise fail later at runtime.
func (s *Settings) Validate() error {
	if s.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", s.Version, CurrentVersion)
	}
	if s.Submission.TimeoutSeconds < 0 {
		return fmt.Errorf("submission.timeout_seconds must not be negative, got %d", s.Submission.TimeoutSeconds)
	}
	if s.Display.CompactBreakpoint < 0 {
		return fmt.Errorf("display.compact_breakpoint must not be negative, got %d", s.Display.CompactBreakpoint)
	}
	if !dialcode.Valid(s.Display.DefaultDialCode) {
		return fmt.Errorf("display.default_dial_code %q is not a known dial code", s.Display.DefaultDialCode)
	}
	return nil
}

// Redacted returns a copy safe to print: the access key is masked.
func (s *Settings) Redacted() *Settings {
	out := *s
	if key := out.Submission.AccessKey; key != "" {
		if len(key) > 4 {
			out.Submission.AccessKey = key[:4] + "****"
		} else {
			out.Submission.AccessKey = "****"
		}
	}
	return &out
}
