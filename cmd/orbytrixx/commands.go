package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/orbytrixx/orbytrixx/internal/config"
	"github.com/orbytrixx/orbytrixx/internal/content"
	"github.com/orbytrixx/orbytrixx/internal/dialcode"
	"github.com/orbytrixx/orbytrixx/internal/logging"
	"github.com/orbytrixx/orbytrixx/internal/selector"
	"github.com/orbytrixx/orbytrixx/internal/tui"
	"github.com/orbytrixx/orbytrixx/internal/ui"
	"github.com/orbytrixx/orbytrixx/internal/version"
)

// globalOptions are flags shared by every command
type globalOptions struct {
	configPath string
}

// settings loads the configuration file named by --config, or the default
// one. A missing file yields defaults.
func (o *globalOptions) settings() (*config.Settings, error) {
	if o.configPath != "" {
		return config.LoadFile(o.configPath)
	}
	return config.Load()
}

func (o *globalOptions) path() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.GetConfigPath()
}

func newRootCmd() *cobra.Command {
	global := &globalOptions{}
	var (
		page      string
		service   string
		skipIntro bool
		noMouse   bool
	)

	cmd := &cobra.Command{
		Use:   "orbytrixx",
		Short: "Orbytrixx in your terminal",
		Long: `The Orbytrixx studio site as a terminal application.

Browse services, read about the studio, apply for an open role or send a
project inquiry. Running without a command opens the interactive site.`,
		Example: `  # Open the site
  orbytrixx

  # Start on the careers page without the intro
  orbytrixx --page careers --skip-intro

  # Start a project inquiry for a service
  orbytrixx --service data-analysis

  # Open a service's detail in the carousel
  orbytrixx --page services --service autonomous-ai`,
		Version:       version.Full(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := global.settings()
			if err != nil {
				return err
			}

			start := tui.PageHome
			if page != "" {
				if start, err = tui.ParsePage(page); err != nil {
					return err
				}
			}

			client := settings.Submission.NewClient()
			if err := client.Validate(); err != nil {
				logging.Warn("careers submissions will fail", zap.Error(err))
			}

			app, err := tui.NewAppModel(tui.Options{
				Settings:  settings,
				Submitter: client,
				StartPage: start,
				Service:   service,
				SkipIntro: skipIntro,
			})
			if err != nil {
				return err
			}

			opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
			if settings.Display.Mouse && !noMouse {
				opts = append(opts, tea.WithMouseAllMotion())
			}
			if _, err := tea.NewProgram(app, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("site error: %w", err)
			}
			return nil
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Config file (default is the user config directory)")
	cmd.Flags().StringVar(&page, "page", "", "Start page (home, services, about, careers, why-us, contact)")
	cmd.Flags().StringVar(&service, "service", "", "Open Contact with an inquiry for this service, or its detail with --page services")
	cmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "Skip the intro animation")
	cmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(
		newCodesCmd(),
		newServicesCmd(),
		newApplyCmd(global),
		newContactCmd(global),
		newConfigCmd(global),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orbytrixx %s (commit: %s)\n", version.Version, version.Commit)
		},
	}
}

func newCodesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "codes [search]",
		Short: "List country dial codes",
		Long: `List the country dial codes offered by the phone fields.

The optional search matches country names, dial codes and ISO codes,
ignoring case.`,
		Example: `  orbytrixx codes
  orbytrixx codes united
  orbytrixx codes +44
  orbytrixx codes jp --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := ""
			if len(args) == 1 {
				search = args[0]
			}
			entries := dialcode.Filter(search)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			p := ui.NewPrinter(cmd.OutOrStdout())
			if len(entries) == 0 {
				p.Println("  " + selector.NoMatchesText)
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.DialCode, e.ISO, e.Flag + " " + e.Name})
			}
			p.PrintTable([]string{"CODE", "ISO", "COUNTRY"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services [slug]",
		Short: "List services or show one in detail",
		Example: `  orbytrixx services
  orbytrixx services autonomous-ai`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := content.Load()
			if err != nil {
				return err
			}
			p := ui.NewPrinter(cmd.OutOrStdout())

			if len(args) == 0 {
				rows := make([][]string, 0, len(site.Services))
				for _, svc := range site.Services {
					title := svc.Title
					if svc.ComingSoon {
						title += " (coming soon)"
					}
					rows = append(rows, []string{svc.Slug, title, svc.Short})
				}
				p.PrintTable([]string{"SLUG", "SERVICE", "SUMMARY"}, rows)
				return nil
			}

			svc, ok := site.Service(args[0])
			if !ok {
				return fmt.Errorf("unknown service %q (see 'orbytrixx services')", args[0])
			}

			p.PrintHeader(svc.Title, "orbytrixx services "+svc.Slug)
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(p.Width()-2),
			)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}
			out, err := renderer.Render(content.ServiceMarkdown(svc))
			if err != nil {
				return fmt.Errorf("failed to render service: %w", err)
			}
			p.Println(strings.TrimRight(out, "\n"))
			if !svc.ComingSoon {
				p.Printf("  Start a project: orbytrixx contact --service %s\n", svc.Slug)
			}
			return nil
		},
	}
}

func newConfigCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := global.path()
			if err != nil {
				return err
			}
			if err := config.CreateDefaultConfig(path, force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}
			ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written",
				ui.Param{Key: "Path", Value: path},
				ui.Param{Key: "Access key", Value: "set " + config.AccessKeyEnvVar + " or edit the file"},
			)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the effective configuration: defaults, the file, then environment
overrides. The access key is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := global.settings()
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(settings.Redacted())
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := global.path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(initCmd, showCmd, pathCmd)
	return cmd
}
