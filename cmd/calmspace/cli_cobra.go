package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func executeCLI() error {
	return buildRootCommand().Execute()
}

func buildRootCommand() *cobra.Command {
	var showVersion bool

	root := &cobra.Command{
		Use:   "calmspace",
		Short: "Mental wellness companion bot with Discord and Telegram gateways",
		Long: strings.TrimSpace(`calmspace is a supportive chat companion for students.

Use CLI commands to onboard, chat locally, run the channel gateway with
daily challenge reminders, and inspect stored sessions.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion()
				return nil
			}
			_ = cmd.Help()
			return fmt.Errorf("a subcommand is required")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "Show build/version metadata")

	root.AddCommand(newOnboardCommand())
	root.AddCommand(newChatCommand())
	root.AddCommand(newGatewayCommand())
	root.AddCommand(newStatusCommand())
	root.AddCommand(newSessionsCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newOnboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "onboard",
		Short:   "Initialize ~/.calmspace configuration",
		Long:    "Create the default configuration file for a new calmspace installation.",
		Example: "  calmspace onboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return onboard()
		},
	}
}

func newChatCommand() *cobra.Command {
	var (
		message string
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the companion locally (CLI mode)",
		Long:  "Run an interactive local conversation or send a one-shot message without any channel.",
		Example: strings.Join([]string{
			"  calmspace chat",
			"  calmspace chat --message \"I can't sleep before my exam\"",
		}, "\n"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return chatCmd(message, debug)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "One-shot message to send")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	return cmd
}

func newGatewayCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "gateway",
		Short:   "Run the Discord/Telegram gateway",
		Long:    "Start channel adapters, the dialogue engine, and the daily challenge reminder service.",
		Example: "  calmspace gateway --debug",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gatewayCmd(debug)
		},
	}

	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show configuration and runtime readiness",
		Example: "  calmspace status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return statusCmd()
		},
	}
}

func newSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sessions",
		Short:   "List stored sessions with history and challenge summaries",
		Example: "  calmspace sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return sessionsCmd()
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Show build/version metadata",
		Example: "  calmspace version",
		RunE: func(cmd *cobra.Command, args []string) error {
			printVersion()
			return nil
		},
	}
}
