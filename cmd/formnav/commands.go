package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/formnav/internal/config"
	"github.com/muurk/formnav/internal/form"
	"github.com/muurk/formnav/internal/logging"
	"github.com/muurk/formnav/internal/navigator"
	"github.com/muurk/formnav/internal/ui"
)

// Global flags
var (
	configPath string
	formName   string
	logLevel   string
	logFile    string
	behaviour  string
	lastLabel  string
)

// Config command flags
var (
	forceInit  bool
	showFormat string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Configuration file (default is the platform config directory)")
	flags.StringVar(&formName, "form", "", "Form to use (default is the document's default form)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent, or $"+logging.LogLevelEnvVar+")")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file (default $"+logging.LogFileEnvVar+")")
	flags.StringVar(&behaviour, "behaviour", "", "Override navigation order: subviews, tag, position")
	flags.StringVar(&lastLabel, "last-label", "", "Override the submit label of the last field (e.g. done, go, send)")

	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(configCmd)

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
	configShowCmd.Flags().StringVar(&showFormat, "format", "yaml", "Output format (yaml, toml)")
	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)
}

// setupLogging initialises zap before any command runs. The interactive
// form owns the terminal, so its logs go to a file unless one was given.
func setupLogging(cmd *cobra.Command, args []string) error {
	output := logFile
	if !cmd.HasParent() && output == "" && os.Getenv(logging.LogFileEnvVar) == "" {
		if dir, err := config.GetConfigDir(); err == nil {
			if err := os.MkdirAll(dir, 0700); err == nil {
				output = filepath.Join(dir, "formnav.log")
			}
		}
	}
	return logging.Initialize(logLevel, output)
}

// loadDocument reads --config, or the default configuration file.
func loadDocument() (*config.Document, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// navigationConfig applies the --behaviour and --last-label overrides.
func navigationConfig(doc *config.Document) (navigator.Config, error) {
	cfg := doc.Navigation
	if behaviour != "" {
		b, err := navigator.ParseBehaviour(behaviour)
		if err != nil {
			return cfg, err
		}
		cfg.Behaviour = b
	}
	if lastLabel != "" {
		l, err := navigator.ParseSubmitLabel(lastLabel)
		if err != nil {
			return cfg, err
		}
		cfg.LastSubmitLabel = l
	}
	return cfg, nil
}

func loadForm() (*config.FormSpec, navigator.Config, error) {
	doc, err := loadDocument()
	if err != nil {
		return nil, navigator.Config{}, err
	}
	spec, err := doc.Form(formName)
	if err != nil {
		return nil, navigator.Config{}, err
	}
	cfg, err := navigationConfig(doc)
	if err != nil {
		return nil, navigator.Config{}, err
	}
	logging.Debug("Form selected",
		zap.String("form", spec.Name),
		zap.Int("forms", len(doc.Forms)),
		zap.String("behaviour", cfg.Behaviour.String()),
	)
	return spec, cfg, nil
}

func runForm(cmd *cobra.Command, args []string) error {
	spec, cfg, err := loadForm()
	if err != nil {
		return err
	}

	model := form.New(spec, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		logging.Error("Form program failed", zap.String("form", spec.Name), zap.Error(err))
		return fmt.Errorf("form error: %w", err)
	}

	m, ok := final.(form.Model)
	if !ok {
		return nil
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if !m.Submitted() {
		printer.PrintResult(ui.NewWarningResult("Form not submitted",
			ui.Param{Key: "Form", Value: spec.Name},
		))
		return nil
	}

	result := ui.NewSuccessResult("Form submitted")
	for _, f := range m.Fields() {
		if f.Node().Hidden {
			continue
		}
		result.AddDetail(f.Label(), strings.ReplaceAll(f.Value(), "\n", " ⏎ "))
	}
	printer.PrintResult(result)
	logging.Info("Form submitted", zap.String("form", spec.Name), zap.Int("fields", len(m.Fields())))
	return nil
}

// orderCmd prints the navigation order of a form
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Print the navigation order of a form",
	Long: `Print the order in which return moves through the fields of a form,
together with the return key label each field shows.

Fields inside a scrollable list form one scope; otherwise each group of
sibling fields is its own scope. Disabled and hidden fields are listed
but take no position.`,
	Example: `  # Order of the default form
  formnav order

  # Order by tag with "Done" on the last field
  formnav order --behaviour tag --last-label done

  # Order of a form from a specific file
  formnav order --config ./forms.toml --form feedback`,
	RunE: runOrder,
}

func runOrder(cmd *cobra.Command, args []string) error {
	spec, cfg, err := loadForm()
	if err != nil {
		return err
	}

	model := form.New(spec, cfg)
	nav := model.Navigator()
	defer nav.Close()

	var scopes []ui.OrderScope
	for _, scope := range model.Scopes() {
		out := ui.OrderScope{Title: scope.Name}
		for _, f := range scope.Fields {
			nav.RefreshSubmitLabel(f)
			out.Rows = append(out.Rows, orderRow(f, f.SubmitLabel().Caption(), ""))
		}
		for _, f := range scope.Skipped {
			reason := "disabled"
			if !f.Enabled() && f.Node().Hidden {
				reason = "disabled, hidden"
			} else if f.Node().Hidden {
				reason = "hidden"
			}
			out.Rows = append(out.Rows, orderRow(f, "", reason))
		}
		scopes = append(scopes, out)
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Navigation Order", "formnav order",
		ui.Param{Key: "Form", Value: spec.Name},
		ui.Param{Key: "Behaviour", Value: cfg.Behaviour.String()},
		ui.Param{Key: "Last label", Value: cfg.LastSubmitLabel.Caption()},
	)
	printer.PrintOrder(scopes)
	return nil
}

func orderRow(f form.Field, label, skip string) ui.OrderRow {
	frame := f.ScreenFrame()
	return ui.OrderRow{
		Name:  f.Name(),
		Kind:  f.Kind().String(),
		Tag:   f.Tag(),
		X:     frame.X,
		Y:     frame.Y,
		Label: label,
		Skip:  skip,
	}
}

// configCmd groups configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the built-in configuration, including the example contact form,
to --config or the platform configuration path. Files ending in .toml are
written as TOML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetPath()
		if err != nil {
			return err
		}

		printer := ui.NewPrinter(cmd.OutOrStdout())
		if err := config.CreateDefaultConfig(configPath, forceInit); err != nil {
			logging.Warn("Configuration not written", zap.String("path", path), zap.Error(err))
			printer.PrintResult(ui.NewFailureResult("Configuration not written", err,
				"use --force to overwrite an existing file",
			))
			return err
		}
		printer.PrintResult(ui.NewSuccessResult("Configuration written",
			ui.Param{Key: "Path", Value: path},
		))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := targetPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch strings.ToLower(showFormat) {
		case "toml":
			return toml.NewEncoder(out).Encode(doc)
		case "yaml", "":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(doc)
		default:
			return fmt.Errorf("unknown format %q (expected yaml or toml)", showFormat)
		}
	},
}

func targetPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
