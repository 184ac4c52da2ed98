package engine

import (
	"regexp"
	"strings"
)

// Mojibake sequences seen in sheets that round-tripped through a latin-1
// viewer, mapped back to what the author typed.
var mojibakeReplacer = strings.NewReplacer(
	"â€“", "-", // en dash
	"â€”", "-", // em dash
	"â€™", "'",
	"â€˜", "'",
	"â€œ", `"`,
	"â€", `"`,
	"Â ", " ",
	" ", " ", // no-break space
)

var dashReplacer = strings.NewReplacer(
	"‐", "-", "‑", "-", "‒", "-",
	"–", "-", "—", "-", "―", "-",
)

var spaceRun = regexp.MustCompile(`[ \t]+`)

// Sanitize normalizes one raw cell: mojibake repair, dash normalization,
// and whitespace collapse. Line breaks survive so multi-entry cells can be
// split downstream; each line is trimmed individually.
func Sanitize(s string) string {
	s = mojibakeReplacer.Replace(s)
	s = dashReplacer.Replace(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
