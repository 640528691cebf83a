package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// Status describes the viewer state shown by the overlay.
type Status struct {
	Rules      []uint8
	Meta       uint8
	Reversible bool
	Paused     bool
	Reveal     int
	Height     int
}

// Line formats the one-line summary drawn at the top of the viewer.
func (st Status) Line() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rules %s", ruleList(st.Rules))
	if st.Meta != 0 {
		fmt.Fprintf(&b, "  meta %d", st.Meta)
	}
	if st.Reversible {
		b.WriteString("  reversible")
	}
	fmt.Fprintf(&b, "  row %d/%d", st.Reveal, st.Height)
	if st.Paused {
		b.WriteString("  paused")
	}
	return b.String()
}

func ruleList(rules []uint8) string {
	parts := make([]string, len(rules))
	for i, r := range rules {
		parts[i] = strconv.Itoa(int(r))
	}
	return strings.Join(parts, ",")
}
