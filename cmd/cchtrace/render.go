package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var headers = []string{
	"COUNTER", "FRAC", "LEN", "INPUT", "CODE", "COMPLETE", "COLLECT",
	"DROP LAST", "PREV MARKED", "COLLECTED", "N", "SLICES",
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dropStyle   = cellStyle.Foreground(lipgloss.Color("203"))
	doneStyle   = cellStyle.Foreground(lipgloss.Color("78"))
	mutedStyle  = cellStyle.Foreground(lipgloss.Color("245"))
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func (r row) cells() []string {
	return []string{
		strconv.FormatUint(uint64(r.Counter), 10),
		strconv.FormatUint(uint64(r.Fraction), 10),
		strconv.FormatUint(uint64(r.Length), 10),
		r.Input,
		fmt.Sprintf("%s (%s)", r.Code, r.CodeByte),
		yesNo(r.Complete),
		yesNo(r.Collection),
		yesNo(r.DroppedLast),
		yesNo(r.PrevMarked),
		strconv.FormatUint(uint64(r.Collected), 10),
		strconv.FormatUint(uint64(r.NumCollected), 10),
		strconv.FormatUint(uint64(r.Slices), 10),
	}
}

// style picks the row style: drops stand out, released frames are
// highlighted and collection frames are muted.
func (r row) style() lipgloss.Style {
	switch {
	case r.DroppedLast || r.PrevMarked || strings.Contains(r.Code, "FRAME_DROP"):
		return dropStyle
	case r.Complete && !r.Collection:
		return doneStyle
	case r.Collection:
		return mutedStyle
	default:
		return cellStyle
	}
}

func renderStyled(w io.Writer, rows []row) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(r, _ int) lipgloss.Style {
			if r == table.HeaderRow {
				return headerStyle
			}
			return rows[r].style()
		})
	for _, r := range rows {
		t.Row(r.cells()...)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderPlain(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.cells(), "\t"))
	}
	return tw.Flush()
}

func renderJSON(w io.Writer, rows []row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Frames []row `json:"frames"`
	}{rows})
}
