package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/infrast-go/internal/adapters/persistence"
)

// NewLogsCommand creates the logs command
func NewLogsCommand() *cobra.Command {
	var (
		sessionID string
		level     string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show persisted compile logs of a session",
		Long: `Show compile log entries persisted with --session-log or compiler.persist_logs.

Examples:
  infrast logs --session infrast-a3f8e2b1
  infrast logs --session infrast-a3f8e2b1 --level ERROR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID == "" {
				return fmt.Errorf("--session is required")
			}

			cfg := loadConfig()
			if limit <= 0 {
				limit = cfg.Compiler.LogLimit
			}

			a := &app{cfg: cfg}
			defer a.Close()
			db, err := a.openDB()
			if err != nil {
				return err
			}

			repo := persistence.NewGormCompileLogRepository(db, nil)

			var levelFilter *string
			if level != "" {
				upper := strings.ToUpper(level)
				levelFilter = &upper
			}

			entries, err := repo.GetLogs(context.Background(), sessionID, limit, levelFilter)
			if err != nil {
				return fmt.Errorf("failed to read logs: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No log entries found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TIME\tLEVEL\tMESSAGE\tMETADATA")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Message, prettyMetadata(e.Metadata))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID printed by compile")
	cmd.Flags().StringVar(&level, "level", "", "Filter by level (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries (default: compiler.log_limit)")

	return cmd
}

func prettyMetadata(metadata map[string]interface{}) string {
	if len(metadata) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(metadata))
	for k, v := range metadata {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
