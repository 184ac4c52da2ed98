package engine

import (
	"regexp"
	"strconv"
	"strings"

	"slotwise/internal/domain"
)

// Default column positions used when the metadata header row does not name
// a column recognizably.
const (
	defaultCodeCol    = 1
	defaultNameCol    = 2
	defaultCreditCol  = 3
	defaultFacultyCol = 4
)

// creditFallback is the assumed total credit load for sheets that carry no
// credit-structure column at all.
const creditFallback = 4

type metadataBlock struct {
	headerRow  int
	codeCol    int
	nameCol    int
	creditCol  int
	facultyCol int
	hasCredit  bool
}

// locateMetadataBlock finds the auxiliary subject/faculty table header: the
// first row whose joined lowercase text mentions both a course-code column
// and a faculties column. Column positions are resolved by substring match
// against the header cells, falling back to fixed defaults.
func locateMetadataBlock(rows [][]string) (metadataBlock, bool) {
	for r, row := range rows {
		joined := strings.ToLower(strings.Join(row, " "))
		hasCode := strings.Contains(joined, "course code") || strings.Contains(joined, "subject code")
		if !hasCode || !strings.Contains(joined, "facult") {
			continue
		}

		block := metadataBlock{
			headerRow:  r,
			codeCol:    defaultCodeCol,
			nameCol:    defaultNameCol,
			creditCol:  defaultCreditCol,
			facultyCol: defaultFacultyCol,
		}
		for c, cell := range row {
			lc := strings.ToLower(strings.TrimSpace(cell))
			switch {
			case lc == "":
			case strings.Contains(lc, "code"):
				block.codeCol = c
			case strings.Contains(lc, "facult"):
				block.facultyCol = c
			case strings.Contains(lc, "l-t-p") || strings.Contains(lc, "credit"):
				block.creditCol = c
				block.hasCredit = true
			case strings.Contains(lc, "name") || strings.Contains(lc, "title"):
				block.nameCol = c
			}
		}
		return block, true
	}
	return metadataBlock{}, false
}

// ParseMetadata consumes the metadata block and builds the subject map and
// the faculty expertise map. The returned row index is the metadata header
// row, or -1 when the sheet has no metadata block; the assembler stops
// there so metadata rows are never mistaken for schedule rows.
func (e *Engine) ParseMetadata(rows [][]string) (map[string]SubjectMeta, FacultyMap, int) {
	subjects := make(map[string]SubjectMeta)
	faculty := make(FacultyMap)

	block, ok := locateMetadataBlock(rows)
	if !ok {
		return subjects, faculty, -1
	}

	for _, row := range rows[block.headerRow+1:] {
		code := cellAt(row, block.codeCol)
		if code == "" {
			continue
		}

		meta := SubjectMeta{Code: code, Name: cellAt(row, block.nameCol)}
		if block.hasCredit {
			applyCreditStructure(&meta, cellAt(row, block.creditCol))
		} else {
			meta.Lecture = creditFallback
		}
		subjects[code] = meta

		faculty[code] = parseFacultyString(cellAt(row, block.facultyCol))
	}
	return subjects, faculty, block.headerRow
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// applyCreditStructure splits "3-1-0-0" style text into up to four hour
// counts. Missing or unparseable parts stay zero.
func applyCreditStructure(meta *SubjectMeta, text string) {
	parts := strings.Split(text, "-")
	dst := []*int{&meta.Lecture, &meta.Tutorial, &meta.Practical, &meta.SelfStudy}
	for i, part := range parts {
		if i >= len(dst) {
			break
		}
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			*dst[i] = n
		}
	}
}

var facultyEntryRe = regexp.MustCompile(`^(.*?)\(([^)]*)\)`)

// parseFacultyString parses one compound faculty cell such as
// "Dr. A Rao (A, B), Prof. K Iyer (Sec C)" into a section→instructor map.
// A lone unqualified name becomes the default entry; absent or "unknown"
// text maps the default to the Unknown sentinel.
func parseFacultyString(text string) map[string]string {
	out := make(map[string]string)
	if text == "" || strings.EqualFold(text, "unknown") {
		out[domain.DefaultSectionKey] = domain.UnknownInstructor
		return out
	}

	parts := splitOutsideParens(text, ',')
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := facultyEntryRe.FindStringSubmatch(part)
		if m == nil {
			// A bare name is only trustworthy as a subject-wide default when
			// it is the sole entry; multiple parts imply section-qualified
			// names and no valid single default.
			if len(parts) == 1 {
				out[domain.DefaultSectionKey] = strings.TrimSpace(part)
			}
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		for _, tok := range strings.FieldsFunc(m[2], func(r rune) bool { return r == ',' || r == '&' }) {
			tok = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tok), "Sec "))
			if tok == "" {
				continue
			}
			out[tok] = name
			out["Sec "+tok] = name
		}
	}
	if len(out) == 0 {
		out[domain.DefaultSectionKey] = domain.UnknownInstructor
	}
	return out
}

// splitOutsideParens splits on sep, ignoring separators inside parentheses,
// so "(A, B)" section lists survive the faculty-entry split.
func splitOutsideParens(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + len(string(sep))
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
