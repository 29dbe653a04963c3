package cmd

import (
	"context"
	"time"

	"workstudy/internal/config"
	"workstudy/internal/logger"

	"github.com/spf13/cobra"
)

var cfgFile string

// current is the wired core for the command being executed.
var current *app

var rootCmd = &cobra.Command{
	Use:   "swms",
	Short: "swms manages student work-study jobs, applications, hours and feedback",
	Long: `swms is the command-line interface for the Student Work-Study Management System.

Administrators post jobs, decide on applications, approve logged hours and leave
performance feedback. Students browse jobs, apply, and log hours against the jobs
they were approved for.

Common workflows:

  Pick who you are acting as:
    swms users
    swms login student-1

  Apply to a job:
    swms jobs list
    swms apply job-3 --note "I love giving tours"

  Log hours on an approved job:
    swms hours log --job job-2 --hours 4 --notes "Help desk shift"

  Review as an admin:
    swms login admin-1
    swms applications list
    swms applications status app-2 approved
    swms hours approve log-5

Configuration:
  Settings come from flags, environment variables or a YAML config file:
    SWMS_STORAGE                  Storage backend: file, sqlite, bolt or memory (default: file)
    SWMS_DATA_DIR                 Data directory (default: .swms)
    SWMS_SQLITE_PATH              SQLite database path (default: <data dir>/swms.db)
    SWMS_BOLT_PATH                BoltDB file path (default: <data dir>/swms.bolt)
    SWMS_LOG_LEVEL                debug, info, warn or error (default: info)
    SWMS_METRICS                  Print Prometheus metrics after each command
    OTEL_EXPORTER_OTLP_ENDPOINT   OTLP gRPC collector for traces (default: disabled)
    SWMS_TRACE_SAMPLE_RATIO       Fraction of traces recorded, 0 to 1 (default: 1)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		current = a

		if u, ok := a.session.Current(); ok {
			cmd.SetContext(logger.WithActor(cmd.Context(), u.ID))
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		a := current
		current = nil

		if a.metrics != nil {
			if err := a.metrics.WriteText(cmd.ErrOrStderr()); err != nil {
				a.logger.Warn("failed to write metrics", "error", err)
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.close(ctx)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.String("storage", config.StorageFile, "storage backend: file, sqlite, bolt or memory")
	flags.String("data-dir", ".swms", "data directory for stored records")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Bool("metrics", false, "print Prometheus metrics to stderr after the command")
}

// requireUser prints a hint and returns false when nobody is signed in.
func requireUser(cmd *cobra.Command) (userID string, isAdmin bool, ok bool) {
	u, signedIn := current.session.Current()
	if !signedIn {
		cmd.Println("Not logged in. Run: swms login <user-id>")
		return "", false, false
	}
	return u.ID, u.IsAdmin(), true
}

func requireAdmin(cmd *cobra.Command) bool {
	_, isAdmin, ok := requireUser(cmd)
	if !ok {
		return false
	}
	if !isAdmin {
		cmd.Println("Error: this action requires an admin. Run: swms login admin-1")
		return false
	}
	return true
}

func requireStudent(cmd *cobra.Command) (string, bool) {
	id, isAdmin, ok := requireUser(cmd)
	if !ok {
		return "", false
	}
	if isAdmin {
		cmd.Println("Error: this action is for students")
		return "", false
	}
	return id, true
}

// printError reports err as a single "Error: ..." line.
func printError(cmd *cobra.Command, err error) {
	cmd.Printf("Error: %v\n", err)
}
