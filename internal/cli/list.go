package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgienger/dgboard/internal/models"
	"github.com/tgienger/dgboard/internal/projection"
	"github.com/tgienger/dgboard/internal/tasks"
)

type listOptions struct {
	done     bool
	assignee string
	priority string
	query    string
	from     string
	to       string
}

func newListCmd(cfgPath *string) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the board or the completed tasks",
		Long: `Print the metrics line and the board, or the completed tasks with --done.

When the data directory holds no tasks yet, the demo board is written to it
on first run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := opts.filter()
			if err != nil {
				return err
			}

			s, err := open(*cfgPath)
			if err != nil {
				return err
			}
			defer s.Close()

			snapshot := s.repo.List()
			out := cmd.OutOrStdout()
			printMetrics(out, projection.Summarize(snapshot))
			if opts.done {
				printCompleted(out, projection.Completed(snapshot, filter))
			} else {
				printBoard(out, projection.Board(snapshot, filter.Filter))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.done, "done", false, "List completed tasks instead of the board")
	cmd.Flags().StringVar(&opts.assignee, "assignee", projection.All, "Only tasks assigned to this person")
	cmd.Flags().StringVar(&opts.priority, "priority", projection.All, "Only tasks with this priority")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Case-insensitive search in title and description")
	cmd.Flags().StringVar(&opts.from, "from", "", "Earliest due date (YYYY-MM-DD), with --done")
	cmd.Flags().StringVar(&opts.to, "to", "", "Latest due date (YYYY-MM-DD), with --done")
	return cmd
}

func (o listOptions) filter() (projection.CompletedFilter, error) {
	var f projection.CompletedFilter

	if o.assignee != projection.All {
		a, err := models.ParseAssignee(o.assignee)
		if err != nil {
			return f, fmt.Errorf("--assignee: %w", err)
		}
		f.Assignee = string(a)
	}
	if o.priority != projection.All {
		p, err := models.ParsePriority(o.priority)
		if err != nil {
			return f, fmt.Errorf("--priority: %w", err)
		}
		f.Priority = string(p)
	}
	f.Query = o.query

	if (o.from != "" || o.to != "") && !o.done {
		return f, fmt.Errorf("--from and --to need --done")
	}
	var err error
	if f.From, err = models.ParseDate(o.from); err != nil {
		return f, fmt.Errorf("--from: %w", err)
	}
	if f.To, err = models.ParseDate(o.to); err != nil {
		return f, fmt.Errorf("--to: %w", err)
	}
	return f, nil
}

func printMetrics(w io.Writer, m projection.Metrics) {
	fmt.Fprintf(w, "Total %d · In Progress %d · Review %d · Done %d\n\n", m.Total, m.InProgress, m.Review, m.Done)
}

func printBoard(w io.Writer, cols projection.Columns) {
	for _, status := range models.Statuses {
		col := cols.Column(status)
		fmt.Fprintf(w, "%s (%d)\n", status, len(col))
		for _, t := range col {
			printTask(w, t)
		}
		fmt.Fprintln(w)
	}
}

func printCompleted(w io.Writer, done []models.Task) {
	fmt.Fprintf(w, "Completed (%d)\n", len(done))
	for _, t := range done {
		printTask(w, t)
	}
}

func printTask(w io.Writer, t models.Task) {
	fmt.Fprintf(w, "  %-8s %-8s %s", t.Priority, t.Assignee, t.Title)
	var extra []string
	if !t.DueDate.IsZero() {
		extra = append(extra, "due "+t.DueDate.String())
	}
	if t.EstimateHours > 0 {
		extra = append(extra, tasks.FormatEstimate(t.EstimateHours)+"h")
	}
	if len(t.Tags) > 0 {
		extra = append(extra, tasks.FormatTags(t.Tags))
	}
	if len(extra) > 0 {
		fmt.Fprintf(w, "  [%s]", strings.Join(extra, "; "))
	}
	fmt.Fprintln(w)
}
