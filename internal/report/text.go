package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

func writeText(w io.Writer, rep *Report) error {
	var b strings.Builder
	for _, r := range rep.Results {
		fmt.Fprintf(&b, "[%s] %dx%d grid, %s cells (%s)\n",
			r.Contraption, r.Rows, r.Columns, humanize.Comma(int64(r.Rows*r.Columns)), r.GridPath)

		for _, e := range r.Entries {
			fmt.Fprintf(&b, "  entry (%d,%d) %-5s  %s energized%s%s\n",
				e.X, e.Y, e.Direction, humanize.Comma(int64(e.Energized)), expectation(e.Expected, e.Energized), cachedTag(e.Cached))
			if e.EnergyMap != "" {
				for _, line := range strings.Split(e.EnergyMap, "\n") {
					fmt.Fprintf(&b, "    %s\n", line)
				}
			}
		}
		if r.Best != nil {
			fmt.Fprintf(&b, "  best  (%d,%d) %-5s  %s energized over %s candidates%s%s\n",
				r.Best.X, r.Best.Y, r.Best.Direction, humanize.Comma(int64(r.Best.Energized)),
				humanize.Comma(int64(r.Best.Candidates)), expectation(r.Best.Expected, r.Best.Energized), cachedTag(r.Best.Cached))
		}
		fmt.Fprintf(&b, "  status: %s in %sms\n", r.Status, humanize.FormatFloat("#,###.##", r.ElapsedMS))
	}
	fmt.Fprintf(&b, "run %s: %s (%d contraptions, %sms)\n",
		rep.RunID, rep.Status, len(rep.Results), humanize.FormatFloat("#,###.##", rep.ElapsedMS))

	_, err := io.WriteString(w, b.String())
	return err
}

func expectation(expected *int, got int) string {
	if expected == nil {
		return ""
	}
	if *expected == got {
		return " (as expected)"
	}
	return fmt.Sprintf(" (expected %s)", humanize.Comma(int64(*expected)))
}

func cachedTag(cached bool) string {
	if cached {
		return " [cached]"
	}
	return ""
}
