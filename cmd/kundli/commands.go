package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samvad-hq/kundli-sdk/internal/app"
	"github.com/samvad-hq/kundli-sdk/internal/domain"
	"github.com/spf13/cobra"
)

// cli carries what every subcommand needs.
type cli struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	newRunner func(ctx context.Context) (*app.Runner, error)
}

func newRootCommand(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "kundli",
		Short:         "Call the Vedic Rishi astrology API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(c.stdin)
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	root.AddCommand(
		newEndpointsCommand(c),
		newCallCommand(c),
		newBatchCommand(c),
		newHistoryCommand(c),
	)
	return root
}

func (c *cli) withRunner(ctx context.Context, fn func(*app.Runner) error) error {
	r, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer r.Close()
	return fn(r)
}

func newEndpointsCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the operations in the endpoint catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withRunner(cmd.Context(), func(r *app.Runner) error {
				tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tPATH\tFAMILY")
				for _, ep := range r.Endpoints() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", ep.Name, ep.Path, ep.Family)
				}
				return tw.Flush()
			})
		},
	}
}

func newCallCommand(c *cli) *cobra.Command {
	var (
		data      string
		dataFile  string
		params    []string
		publish   bool
		noHistory bool
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "call <operation>",
		Short: "Call one operation and print the response body",
		Args:  cobra.ExactArgs(1),
		Example: `  kundli call astro_details -d '{"day":10,"month":5,"year":1990,"hour":19,"min":55,"lat":19.2,"lon":25.2,"tzone":5.5}'
  kundli call horo_chart -p chart_id=D9 -f birth.json
  echo '{"day":1}' | kundli call planets -d -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pathParams, err := parseParams(params)
			if err != nil {
				return err
			}
			payload, err := readPayload(data, dataFile, c.stdin)
			if err != nil {
				return err
			}

			return c.withRunner(cmd.Context(), func(r *app.Runner) error {
				rec, err := r.Call(cmd.Context(), args[0], pathParams, payload, app.CallOptions{
					Publish:     publish,
					SkipHistory: noHistory,
				})
				if err != nil {
					if len(rec.Response) > 0 {
						fmt.Fprintln(c.stderr, string(rec.Response))
					}
					return err
				}
				return writeBody(c.stdout, rec.Response, pretty)
			})
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body, or - to read stdin")
	cmd.Flags().StringVarP(&dataFile, "file", "f", "", "Read the JSON request body from a file")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "Path parameter as name=value (repeatable)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish the result to configured publishers")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the call in local history")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent JSON responses")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	return cmd
}

func newBatchCommand(c *cli) *cobra.Command {
	var (
		publish   bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "batch <jobs-file>",
		Short: "Run every job in a YAML or JSON jobs file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := app.LoadJobs(args[0])
			if err != nil {
				return err
			}

			return c.withRunner(cmd.Context(), func(r *app.Runner) error {
				results, runErr := r.RunBatch(cmd.Context(), jobs, app.CallOptions{
					Publish:     publish,
					SkipHistory: noHistory,
				})
				tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "JOB\tOPERATION\tSTATUS\tDURATION\tRESULT")
				for _, res := range results {
					outcome := "ok"
					if res.Err != nil {
						outcome = res.Err.Error()
					}
					fmt.Fprintf(tw, "%s\t%s\t%d\t%dms\t%s\n",
						res.JobID, res.Record.Operation, res.Record.StatusCode, res.Record.DurationMs, outcome)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				return runErr
			})
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "Publish successful results to configured publishers")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the calls in local history")
	return cmd
}

func newHistoryCommand(c *cli) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently recorded calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withRunner(cmd.Context(), func(r *app.Runner) error {
				records, err := r.History(limit)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(c.stdout)
					enc.SetIndent("", "  ")
					return enc.Encode(records)
				}
				return writeHistory(c.stdout, records)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of records (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print records as JSON")
	return cmd
}

func writeHistory(w io.Writer, records []domain.CallRecord) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tOPERATION\tSTATUS\tDURATION\tID")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%dms\t%s\n",
			rec.RequestedAt.Local().Format(time.DateTime), rec.Operation, rec.StatusCode, rec.DurationMs, rec.ID)
	}
	return tw.Flush()
}

// parseParams turns name=value pairs into path parameters.
func parseParams(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid param %q (expected name=value)", pair)
		}
		out[name] = value
	}
	return out, nil
}

// readPayload resolves the request body from --data, --file or stdin. An
// absent body becomes an empty JSON object.
func readPayload(data, file string, stdin io.Reader) (json.RawMessage, error) {
	var raw []byte
	switch {
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read payload file: %w", err)
		}
		raw = b
	case data == "-":
		if stdin == nil {
			return nil, errors.New("no stdin to read payload from")
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read payload from stdin: %w", err)
		}
		raw = b
	default:
		raw = []byte(data)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(raw), nil
}

func writeBody(w io.Writer, body []byte, pretty bool) error {
	if pretty && json.Valid(body) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err == nil {
			body = buf.Bytes()
		}
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
