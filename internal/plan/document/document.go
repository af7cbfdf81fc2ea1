// Package document is the line-level model of a daily-plan file: level-2
// headings are sections, level-3 headings label the tasks below them, and
// checklist lines carry one of six bracket status marks. Everything here is
// a pure function over a line slice; parsing is repeated per operation and
// no derived structure outlives the call.
package document

import (
	"regexp"
	"strings"
)

var (
	// taskRe enumerates exactly the six marks; anything else in brackets
	// is not a task line. Case-insensitive so "[X]" reads as done.
	taskRe       = regexp.MustCompile(`(?i)^\s*-\s*(\[[ x~!>?]\])\s*(.*)$`)
	titleRe      = regexp.MustCompile(`^#\s+`)
	sectionRe    = regexp.MustCompile(`^##\s+`)
	subsectionRe = regexp.MustCompile(`^###\s+`)
)

// StatusForMark maps a bracket mark to its status, case-insensitively.
// Unrecognized marks read as todo.
func StatusForMark(mark string) Status {
	if s, ok := markToStatus[strings.ToLower(mark)]; ok {
		return s
	}
	return StatusTodo
}

// MarkForStatus maps a status to its canonical lowercase mark. Unknown
// statuses fall back to the todo mark rather than failing.
func MarkForStatus(status Status) string {
	if m, ok := statusToMark[status]; ok {
		return m
	}
	return statusToMark[StatusTodo]
}

// IsTitle reports whether line is a level-1 document title.
func IsTitle(line string) bool {
	return titleRe.MatchString(line)
}

// MatchTask matches a checklist line, returning the raw bracket mark and
// the untrimmed text capture. Callers that use text as a lookup key must
// trim it themselves.
func MatchTask(line string) (mark, text string, ok bool) {
	m := taskRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// headingTitle strips heading markup and surrounding whitespace.
func headingTitle(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}

// Sections derives the ordered, contiguous section list. Lines before the
// first level-2 heading belong to no section.
func Sections(lines []string) []Section {
	var sections []Section
	var current *Section
	for i, line := range lines {
		if !sectionRe.MatchString(line) {
			continue
		}
		if current != nil {
			current.End = i - 1
			sections = append(sections, *current)
		}
		current = &Section{Title: headingTitle(line), Start: i, End: len(lines) - 1}
	}
	if current != nil {
		sections = append(sections, *current)
	}
	return sections
}

// SectionByPrefix returns the first section in document order whose title
// starts with prefix.
func SectionByPrefix(lines []string, prefix string) (Section, bool) {
	for _, sec := range Sections(lines) {
		if strings.HasPrefix(sec.Title, prefix) {
			return sec, true
		}
	}
	return Section{}, false
}

// TasksIn scans sec's line range for checklist lines. Level-3 headings
// update the subsection label attached to the tasks that follow; the label
// resets at each call, so it never crosses a section boundary.
func TasksIn(lines []string, sec Section) []Task {
	var tasks []Task
	subsection := ""
	for idx := sec.Start; idx <= sec.End && idx < len(lines); idx++ {
		line := lines[idx]
		if subsectionRe.MatchString(line) {
			subsection = headingTitle(line)
			continue
		}
		mark, text, ok := MatchTask(line)
		if !ok {
			continue
		}
		tasks = append(tasks, Task{
			LineIndex:  idx,
			Raw:        line,
			Mark:       mark,
			Status:     StatusForMark(mark),
			Text:       strings.TrimSpace(text),
			Section:    sec.Title,
			Subsection: subsection,
		})
	}
	return tasks
}

// FindTask returns the index of the first line whose trimmed task text
// equals text exactly. Duplicate texts resolve to the first occurrence;
// later duplicates are unreachable by design.
func FindTask(lines []string, text string) (int, bool) {
	for i, line := range lines {
		_, captured, ok := MatchTask(line)
		if !ok {
			continue
		}
		if strings.TrimSpace(captured) == text {
			return i, true
		}
	}
	return 0, false
}

// SplitLines splits file content into lines, dropping the single trailing
// newline every save appends. Empty content has no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// JoinLines renders lines back to file content, always newline-terminated.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}
