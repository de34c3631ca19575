package classify

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"
)

// WriteReport renders outcomes as an aligned table, one row per position.
func WriteReport(w io.Writer, outcomes []Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB\tGRAPH\tRULE\tSTART\tVERDICT\tWINNER\tELAPSED\tERROR")
	for _, o := range outcomes {
		winner, errText := "-", "-"
		if o.Err != nil {
			errText = o.Err.Error()
		} else if wn := o.State.Winner(); wn != "" {
			winner = wn
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%d\t%v\t%s\t%v\t%s\n",
			o.Job, filepath.Base(o.Graph), o.Rule, o.Start, o.State, winner,
			o.Elapsed.Round(time.Microsecond), errText)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("classify: write report: %w", err)
	}

	return nil
}

// Verdict announces the winner of a decided position, e.g. "P1 Wins!".
// It is empty when the position was not decided.
func (o Outcome) Verdict() string {
	if o.Err != nil || o.State.Winner() == "" {
		return ""
	}

	return o.State.Winner() + " Wins!"
}
