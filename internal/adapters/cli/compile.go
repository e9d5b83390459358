package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/infrast-go/internal/application/common"
	"github.com/andrescamacho/infrast-go/internal/application/infrast"
)

// NewCompileCommand creates the compile command
func NewCompileCommand() *cobra.Command {
	var (
		paramFiles  []string
		inline      string
		freezeAfter int
		sessionLog  bool
		showPatches bool
		metricsOut  string
	)

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile task params into a task unit sequence",
		Long: `Compile one or more task parameter documents against a single session.

Parameter documents are compiled in order. With --freeze-after N the session
enters the executing state after the N-th document, so later documents only
tune parameters and leave the sequence untouched.

Examples:
  infrast compile --params params.json
  infrast compile --json '{"facility":["Mfg","Trade"]}'
  infrast compile --params quick.json --params tune.json --freeze-after 1
  infrast compile --params params.json --metrics-out /var/lib/node_exporter/infrast.prom`,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readParams(paramFiles, inline)
			if err != nil {
				return err
			}

			cfg := loadConfig()
			if metricsOut != "" {
				cfg.Metrics.Enabled = true
				cfg.Metrics.Textfile = metricsOut
			}

			a, err := newApp(cfg, sessionLog)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := common.WithLogger(context.Background(), a.logger)

			var last *infrast.CompileInfrastResponse
			failed := 0
			for i, raw := range docs {
				if freezeAfter > 0 && i == freezeAfter {
					a.session.BeginExecution()
				}

				resp, err := a.mediator.Send(ctx, &infrast.CompileInfrastCommand{Params: raw})
				if err != nil {
					return fmt.Errorf("compile failed: %w", err)
				}
				last = resp.(*infrast.CompileInfrastResponse)
				if !last.Success {
					failed++
					fmt.Fprintf(os.Stderr, "params #%d rejected: %s\n", i+1, last.Error)
				}
			}

			fmt.Printf("Session: %s (%s)\n\n", last.SessionID, a.session.State())
			fmt.Println(NewSequenceFormatter(false).Format(last.Units))

			if showPatches {
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "#\tPATCH")
				for i, p := range last.Patches {
					fmt.Fprintf(w, "%d\t%s\n", i, p)
				}
				w.Flush()
			}

			if err := a.flushMetrics(); err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d params documents failed to compile", failed, len(docs))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paramFiles, "params", nil, "Path to a JSON params document (repeatable)")
	cmd.Flags().StringVar(&inline, "json", "", "Inline JSON params document")
	cmd.Flags().IntVar(&freezeAfter, "freeze-after", 0, "Begin execution after this many documents (0 = never)")
	cmd.Flags().BoolVar(&sessionLog, "session-log", false, "Persist compile logs to the database")
	cmd.Flags().BoolVar(&showPatches, "patches", false, "Print unit configuration patches")
	cmd.Flags().StringVar(&metricsOut, "metrics-out", "", "Write compile metrics to this file in Prometheus text format")

	return cmd
}

func readParams(files []string, inline string) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read params %s: %w", path, err)
		}
		docs = append(docs, json.RawMessage(data))
	}
	if inline != "" {
		docs = append(docs, json.RawMessage(inline))
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no params given: use --params or --json")
	}
	return docs, nil
}
