package ui

import (
	"fmt"

	"github.com/olivier-w/flowlines/internal/lines"
	"github.com/olivier-w/flowlines/internal/util"
)

func renderStatus(st lines.Stats, visible bool, theme string) string {
	icon, state := "▶", "running"
	if !visible {
		icon, state = "❚❚", "paused"
	}
	return fmt.Sprintf("%s %s  lines %s  segments %d  merges %d  %s  %s",
		icon, state,
		util.Ratio(st.Active, st.Capacity),
		st.Segments, st.Merges,
		util.FormatDuration(st.Elapsed),
		theme,
	)
}

func windowTitle(title string, visible bool) string {
	if !visible {
		return "❚❚ " + title
	}
	return title
}
