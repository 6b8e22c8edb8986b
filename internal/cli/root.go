// Package cli wires the termfolio binary: the bare command launches the
// TUI, side commands give one-shot output for scripts and debugging.
package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/askel4dd/termfolio/internal/config"
	"github.com/askel4dd/termfolio/internal/content"
	"github.com/askel4dd/termfolio/internal/logging"
	"github.com/askel4dd/termfolio/internal/tui"
	"github.com/askel4dd/termfolio/internal/tui/styles"
)

// Execute runs the root command.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

type rootFlags struct {
	configFile string
	theme      string
	user       string
	host       string
	cntFile    string
	logLevel   string
	logFile    string
}

func newRootCmd(version string) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "termfolio",
		Short:         "a portfolio disguised as a terminal",
		Long:          "Bubbletea-based portfolio that pretends to be a shell: cd around, view projects, telnet me.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			initLogging(cfg, true)
			return tui.Run(tui.Config{
				Theme:       cfg.TUI.Theme,
				User:        cfg.TUI.User,
				Host:        cfg.TUI.Host,
				ContentFile: cfg.Content.File,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default: XDG config search path)")
	cmd.PersistentFlags().StringVar(&flags.cntFile, "content", "", "portfolio content file (default: built-in)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "log file (default: logs discarded while the TUI runs)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme: "+strings.Join(styles.Names(), "|"))
	cmd.Flags().StringVar(&flags.user, "user", "", "user name shown in the prompt")
	cmd.Flags().StringVar(&flags.host, "host", "", "host name shown in the prompt")

	cmd.AddCommand(newFortuneCmd(flags))
	cmd.AddCommand(newDoctorCmd(flags))
	return cmd
}

// loadConfig resolves configuration with flag overrides on top of the
// viper precedence chain. The second return is the config file that was
// actually read, empty when only defaults applied.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, string, error) {
	loader := config.NewLoader()
	if flags.configFile != "" {
		loader.SetConfigFile(flags.configFile)
	}
	if cmd.Flags().Changed("theme") {
		loader.Set("tui.theme", flags.theme)
	}
	if cmd.Flags().Changed("user") {
		loader.Set("tui.user", flags.user)
	}
	if cmd.Flags().Changed("host") {
		loader.Set("tui.host", flags.host)
	}
	if cmd.Flags().Changed("content") {
		loader.Set("content.file", flags.cntFile)
	}
	if cmd.Flags().Changed("log-level") {
		loader.Set("logging.level", flags.logLevel)
	}
	if cmd.Flags().Changed("log-file") {
		loader.Set("logging.file", flags.logFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, "", err
	}
	return cfg, loader.ConfigFileUsed(), nil
}

// initLogging points the global logger somewhere sensible. While the TUI
// owns the terminal, logs go to the configured file or nowhere.
func initLogging(cfg *config.Config, tuiOwnsTerminal bool) {
	var output io.Writer = os.Stderr
	format := cfg.Logging.Format
	if cfg.Logging.File != "" {
		if f, err := os.OpenFile(cfg.Logging.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			output = f
			format = "json"
		} else if tuiOwnsTerminal {
			output = io.Discard
		}
	} else if tuiOwnsTerminal {
		output = io.Discard
	}
	logging.Init(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       format,
		Output:       output,
		EnableCaller: cfg.Logging.EnableCaller,
	})
}

// loadContent resolves the content source from the loaded config; the
// --content flag already sits on top of the precedence chain via
// loadConfig, so the one-shot commands see the same registry the TUI
// would.
func loadContent(cfg *config.Config) (*content.Registry, error) {
	if cfg.Content.File != "" {
		return content.LoadFile(cfg.Content.File)
	}
	return content.Load()
}

func newFortuneCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fortune",
		Short: "print one quotation from the portfolio's fortune list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd.Root(), flags)
			if err != nil {
				return err
			}
			initLogging(cfg, false)
			reg, err := loadContent(cfg)
			if err != nil {
				return err
			}
			fortunes := reg.Fortunes()
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			fmt.Fprintln(cmd.OutOrStdout(), fortunes[rng.Intn(len(fortunes))])
			return nil
		},
	}
}

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "print the resolved configuration and content summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, configFile, err := loadConfig(cmd.Root(), flags)
			if err != nil {
				return err
			}
			initLogging(cfg, false)
			reg, err := loadContent(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			source := "built-in"
			if cfg.Content.File != "" {
				source = cfg.Content.File
			}
			fmt.Fprintf(out, "config:     %s\n", orDash(configFile))
			fmt.Fprintf(out, "theme:      %s (available: %s)\n", cfg.TUI.Theme, strings.Join(styles.Names(), ", "))
			fmt.Fprintf(out, "prompt:     %s@%s\n", cfg.TUI.User, cfg.TUI.Host)
			fmt.Fprintf(out, "content:    %s\n", source)
			fmt.Fprintf(out, "profile:    %s\n", reg.Profile().Name)
			fmt.Fprintf(out, "projects:   %d (%s)\n", len(reg.ProjectKeys()), strings.Join(reg.ProjectKeys(), ", "))
			fmt.Fprintf(out, "work:       %d records\n", len(reg.WorkKeys()))
			fmt.Fprintf(out, "fortunes:   %d\n", len(reg.Fortunes()))
			fmt.Fprintf(out, "logging:    level=%s format=%s file=%s\n", cfg.Logging.Level, cfg.Logging.Format, orDash(cfg.Logging.File))
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
