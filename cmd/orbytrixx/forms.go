package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/orbytrixx/orbytrixx/internal/content"
	"github.com/orbytrixx/orbytrixx/internal/dialcode"
	"github.com/orbytrixx/orbytrixx/internal/form"
	"github.com/orbytrixx/orbytrixx/internal/logging"
	"github.com/orbytrixx/orbytrixx/internal/submission"
	"github.com/orbytrixx/orbytrixx/internal/ui"
)

// formFlags holds the field values given on the command line.
type formFlags struct {
	values map[form.Field]*string
}

// bindFormFlags registers one flag per field of variant. Flag names are the field
// names in kebab case.
func bindFormFlags(cmd *cobra.Command, variant form.Variant) *formFlags {
	ff := &formFlags{values: make(map[form.Field]*string)}
	for _, f := range variant.Fields() {
		ff.values[f] = cmd.Flags().String(flagName(f), "", variant.Label(f))
	}
	return ff
}

func flagName(f form.Field) string {
	if f == form.FieldCountryCode {
		return "country-code"
	}
	return string(f)
}

// apply copies the flags that were set into the session. Unset flags keep
// the session defaults.
func (ff *formFlags) apply(cmd *cobra.Command, s *form.Session) error {
	for _, f := range s.Variant().Fields() {
		if !cmd.Flags().Changed(flagName(f)) {
			continue
		}
		raw := *ff.values[f]

		switch f {
		case form.FieldCountryCode:
			code, err := parseDialCode(raw)
			if err != nil {
				return err
			}
			s.SetCountryCode(code)
		case form.FieldRole:
			role, err := parseRole(raw)
			if err != nil {
				return err
			}
			s.SetField(f, role)
		default:
			s.SetField(f, raw)
		}
	}
	s.TouchAll()
	return nil
}

// parseDialCode accepts "+44", "44" or an ISO code such as "gb".
func parseDialCode(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if e, ok := dialcode.ByISO(raw); ok {
		return e.DialCode, nil
	}
	code := raw
	if !strings.HasPrefix(code, "+") {
		code = "+" + code
	}
	if !dialcode.Valid(code) {
		return "", fmt.Errorf("unknown dial code %q (see 'orbytrixx codes')", raw)
	}
	return code, nil
}

// parseRole matches a role case-insensitively; dashes stand for spaces.
func parseRole(raw string) (string, error) {
	want := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "-", " "))
	for _, role := range form.Roles[1:] {
		if role == want {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role %q (want one of %s)", raw, strings.Join(form.Roles[1:], ", "))
}

// invalidError reports a form that failed validation. The details were
// already printed.
type invalidError struct {
	count int
}

func (e *invalidError) Error() string {
	return fmt.Sprintf("%d field(s) invalid", e.count)
}

func summary(s *form.Session) []ui.Param {
	var params []ui.Param
	for _, f := range s.Variant().Fields() {
		v := s.Value(f)
		switch f {
		case form.FieldCountryCode:
			continue
		case form.FieldPhone:
			v = submission.FormatPhone(s.Value(form.FieldCountryCode), v)
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		params = append(params, ui.Param{Key: s.Variant().Label(f), Value: content.Truncate(v, 60)})
	}
	return params
}

func newApplyCmd(global *globalOptions) *cobra.Command {
	var (
		yes    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply for an open role",
		Long: `Send a Careers application without opening the interactive site.

Every field is validated first; invalid fields are listed and nothing is
sent. Roles: ` + strings.Join(form.Roles[1:], ", ") + `.

The relay access key comes from the config file or ORBYTRIXX_ACCESS_KEY.`,
		Example: `  orbytrixx apply --name "Grace Hopper" --email grace@navy.mil \
    --country-code +1 --phone 5551234567 --company "US Navy" \
    --role ai-architect --portfolio https://github.com/grace \
    --summary "Compilers and COBOL."`,
		Args: cobra.NoArgs,
	}
	fields := bindFormFlags(cmd, form.Careers)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Send without asking for confirmation")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print the request body without sending")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		settings, err := global.settings()
		if err != nil {
			return err
		}

		session := form.NewCareers(form.WithDefault(form.FieldCountryCode, settings.Display.DefaultDialCode))
		if err := fields.apply(cmd, session); err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		if errs := session.Errors(); len(errs) > 0 {
			p.PrintHeader("Careers Application", "orbytrixx apply")
			p.PrintValidation(form.Careers, errs)
			return &invalidError{count: len(errs)}
		}

		client := settings.Submission.NewClient()

		if dryRun {
			payload := submission.PayloadFromValues(session.Values())
			payload.AccessKey = settings.Redacted().Submission.AccessKey
			payload.Subject = client.Subject
			payload.FromName = client.FromName
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		if !yes && isInteractive(cmd) {
			ok, err := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Send application", summary(session), "Send this application?", p.Width())
			if err != nil || !ok {
				return err
			}
		}

		return sendApplication(cmd.Context(), cmd, session, client, p.Width())
	}
	return cmd
}

// sendApplication submits a valid Careers session with step progress.
func sendApplication(ctx context.Context, cmd *cobra.Command, session *form.Session, client *submission.Client, width int) error {
	runner := ui.NewRunner(ui.RunnerConfig{
		Title:        "Careers Application",
		Command:      "orbytrixx apply",
		Params:       summary(session),
		Steps:        []string{"Validate application", "Check relay settings", "Send application"},
		SuccessTitle: "Application logged",
		FailureTitle: "Application not sent",
		Troubleshooting: func(err error) []string {
			return append([]string{submission.AlertMessage(err)}, ui.SplitHints(submission.TroubleshootingHints(err))...)
		},
		Output: cmd.OutOrStdout(),
		Width:  width,
		Live:   isInteractive(cmd),
	})

	return runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Param, error) {
		onStep(1, ui.StepRunning, "")
		if !session.CanSubmit() {
			onStep(1, ui.StepFailed, "")
			return nil, form.ErrInvalid
		}
		onStep(1, ui.StepComplete, fmt.Sprintf("%d fields", len(form.Careers.Fields())))

		onStep(2, ui.StepRunning, "")
		if err := client.Validate(); err != nil {
			onStep(2, ui.StepFailed, submission.ShortMessage(err))
			onStep(3, ui.StepSkipped, "")
			return nil, err
		}
		onStep(2, ui.StepComplete, client.Endpoint)

		onStep(3, ui.StepRunning, "")
		if err := session.Submit(ctx, client); err != nil {
			onStep(3, ui.StepFailed, submission.ShortMessage(err))
			return nil, err
		}
		onStep(3, ui.StepComplete, "")

		return []ui.Param{
			{Key: "Role", Value: session.Value(form.FieldRole)},
			{Key: "Reply to", Value: session.Value(form.FieldEmail)},
		}, nil
	})
}

func newContactCmd(global *globalOptions) *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Log a project inquiry",
		Long: `Validate and log a project inquiry without opening the interactive site.

With --service the project overview starts as "<service> – Project Inquiry"
unless --message is given. Inquiries are validated and logged locally.`,
		Example: `  orbytrixx contact --name Ada --email ada@example.com \
    --country-code gb --phone 7700900123 --service autonomous-ai`,
		Args: cobra.NoArgs,
	}
	fields := bindFormFlags(cmd, form.Contact)
	cmd.Flags().StringVar(&service, "service", "", "Seed the message from a service (slug or title)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		settings, err := global.settings()
		if err != nil {
			return err
		}

		opts := []form.Option{form.WithDefault(form.FieldCountryCode, settings.Display.DefaultDialCode)}
		if service != "" {
			site, err := content.Load()
			if err != nil {
				return err
			}
			svc, ok := site.Service(service)
			if !ok {
				return fmt.Errorf("unknown service %q (see 'orbytrixx services')", service)
			}
			opts = append(opts, form.WithInitial(form.FieldMessage, svc.Inquiry()))
		}

		session := form.NewContact(opts...)
		if err := fields.apply(cmd, session); err != nil {
			return err
		}

		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintHeader("Project Inquiry", "orbytrixx contact")
		if errs := session.Errors(); len(errs) > 0 {
			p.PrintValidation(form.Contact, errs)
			return &invalidError{count: len(errs)}
		}

		if err := session.Submit(cmd.Context(), nil); err != nil {
			return err
		}
		logging.LogSubmission(uuid.NewString(), form.Contact.String(), session.Outcome().String(), 0, nil)
		p.PrintSuccess("Inquiry logged", summary(session)...)
		return nil
	}
	return cmd
}

// isInteractive reports whether the command reads from and writes to a
// terminal.
func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !ui.IsTerminal(in.Fd()) {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && ui.IsTerminal(out.Fd())
}
