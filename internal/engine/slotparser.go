package engine

import (
	"regexp"
	"strings"

	"slotwise/internal/domain"
)

// ParsedLine is the heuristic parser's output for one cell line.
type ParsedLine struct {
	Subject string
	Type    domain.SlotType
	Section string
	Room    string
}

// Tokens that are grid furniture, not schedule entries. Compared against the
// line with everything but alphanumerics stripped and uppercased.
var ignoreTokens = map[string]struct{}{
	"LUNCH":      {},
	"LUNCHBREAK": {},
	"BREAK":      {},
	"SHORTBREAK": {},
	"TEA":        {},
	"TEABREAK":   {},
	"RECESS":     {},
	"DAY":        {},
	"TIME":       {},
	"DAYTIME":    {},
	"HOURS":      {},
	"SLOT":       {},
}

var (
	nonAlnumRe = regexp.MustCompile(`[^A-Z0-9]+`)

	typeMarkerRe = regexp.MustCompile(`\(\s*([LTPltp])\s*\)`)

	// Known room-code shape: short letter prefix, optional separator, number,
	// optional wing letter. E.g. LT-101, CR 2, LAB204B.
	roomShapeRe = regexp.MustCompile(`\(\s*([A-Za-z]{1,5}\s*-?\s*\d{1,4}[A-Za-z]?)\s*\)`)

	// Fallback: any trailing parenthesized alphanumeric token of length >= 3.
	roomTrailRe = regexp.MustCompile(`\(\s*([A-Za-z0-9][A-Za-z0-9 -]{2,})\s*\)\s*$`)

	sectionMarkerRe = regexp.MustCompile(`(?i)\b(?:sec|group)\.?\s*-?\s*([A-Za-z0-9]{1,4})\b`)

	roomSepRe = regexp.MustCompile(`[\s-]+`)
)

var slotTypeByMarker = map[string]domain.SlotType{
	"L": domain.SlotLecture,
	"T": domain.SlotTutorial,
	"P": domain.SlotPractical,
}

// parseStage consumes its match from the text, returning the extracted
// fragment (empty when nothing matched) and the remaining text. Stages run
// in a fixed order and each mutates the remainder the next stage sees;
// reordering them changes results.
type parseStage struct {
	name  string
	apply func(text string) (fragment, remaining string)
}

func extractTypeMarker(text string) (string, string) {
	m := typeMarkerRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", text
	}
	frag := strings.ToUpper(text[m[2]:m[3]])
	return frag, text[:m[0]] + text[m[1]:]
}

func extractRoom(text string) (string, string) {
	m := roomShapeRe.FindStringSubmatchIndex(text)
	if m == nil {
		m = roomTrailRe.FindStringSubmatchIndex(text)
	}
	if m == nil {
		return "", text
	}
	return normalizeRoom(text[m[2]:m[3]]), text[:m[0]] + text[m[1]:]
}

func extractSection(text string) (string, string) {
	m := sectionMarkerRe.FindStringSubmatchIndex(text)
	if m == nil {
		return "", text
	}
	frag := "Sec " + strings.ToUpper(text[m[2]:m[3]])
	return frag, text[:m[0]] + text[m[1]:]
}

// normalizeRoom canonicalizes a room token to PREFIX-NUMBER form: uppercase,
// internal whitespace and dash runs collapsed to single dashes.
func normalizeRoom(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = roomSepRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// slotParseStages is the ordered, destructive extraction pipeline. Order
// matters: the type marker must go before room extraction or "(L)" would be
// eaten as a short room, and both must go before the residual-subject
// cleanup.
var slotParseStages = []parseStage{
	{name: "type", apply: extractTypeMarker},
	{name: "room", apply: extractRoom},
	{name: "section", apply: extractSection},
}

// ParseLine extracts {subject, type, section, room} from one sanitized cell
// line. A nil ParsedLine with a non-empty reason means the line was
// intentionally skipped; parse failures never occur here, garbage simply
// skips with a reason.
func (e *Engine) ParseLine(line string) (*ParsedLine, string) {
	normalized := nonAlnumRe.ReplaceAllString(strings.ToUpper(line), "")
	if _, ok := ignoreTokens[normalized]; ok {
		return nil, "ignored garbage token"
	}
	if normalized == "" {
		return nil, "empty line"
	}

	parsed := &ParsedLine{Type: domain.SlotLecture, Section: domain.SectionAll}
	text := line
	for _, stage := range slotParseStages {
		var frag string
		frag, text = stage.apply(text)
		if frag == "" {
			continue
		}
		switch stage.name {
		case "type":
			parsed.Type = slotTypeByMarker[frag]
		case "room":
			parsed.Room = frag
		case "section":
			parsed.Section = frag
		}
	}

	subject := strings.NewReplacer("(", " ", ")", " ").Replace(text)
	subject = strings.Trim(strings.TrimSpace(spaceRun.ReplaceAllString(subject, " ")), "-")
	subject = strings.TrimSpace(subject)
	if len(subject) < 2 {
		return nil, "no usable subject text"
	}
	parsed.Subject = subject
	return parsed, ""
}
