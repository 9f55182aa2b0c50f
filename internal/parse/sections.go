// Package parse converts free-text model replies into structured results.
// Every parser is a pure function and total: malformed or empty input
// yields a valid, mostly-empty result with the raw text preserved in the
// primary free-text field, never an error.
//
// The extraction grammar is a small line-oriented format: markdown-style
// headings, numbered top-level sections, bullet markers and fixed labels,
// each checked in both Russian and English.
package parse

import (
	"regexp"
	"strings"
)

var (
	numberedSectionRe = regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s*`)
	bulletRe          = regexp.MustCompile(`^\s*[-*•]\s+`)
)

// heading is a set of equivalent heading spellings, lowercase, without
// leading hashes or trailing colons.
type heading []string

func (h heading) matches(line string) bool {
	norm := normalizeHeading(line)
	if norm == "" {
		return false
	}
	for _, v := range h {
		if norm == v {
			return true
		}
	}
	return false
}

func normalizeHeading(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(s, "#")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":")
	s = strings.TrimSuffix(strings.TrimSpace(s), ".")
	return strings.ToLower(strings.TrimSpace(s))
}

// section returns the body that follows the wanted heading, up to the next
// heading from all (or the next markdown heading line), or "" when the
// wanted heading is absent.
func section(text string, wanted heading, all []heading) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if wanted.matches(line) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return ""
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if isBoundary(lines[i], all) {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

func isBoundary(line string, all []heading) bool {
	for _, h := range all {
		if h.matches(line) {
			return true
		}
	}
	// A fresh "## " heading ends the current section even when we do not
	// recognize its text.
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "# ")
}

// subSections splits a section body on "### " sub-headings, returning
// (title, body) pairs in order. Text before the first sub-heading is
// dropped.
func subSections(body string) [][2]string {
	lines := strings.Split(body, "\n")
	var out [][2]string
	title := ""
	var buf []string
	flush := func() {
		if title != "" {
			out = append(out, [2]string{title, strings.TrimSpace(strings.Join(buf, "\n"))})
		}
		buf = buf[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "### ") {
			flush()
			title = strings.TrimSpace(strings.TrimPrefix(trimmed, "### "))
			continue
		}
		buf = append(buf, line)
	}
	flush()
	return out
}

// bullets returns the text of every bulleted line in body. Continuation
// lines (indented, non-bulleted) are folded into the preceding bullet.
func bullets(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		if bulletRe.MatchString(line) {
			out = append(out, strings.TrimSpace(bulletRe.ReplaceAllString(line, "")))
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(out) == 0 {
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			out[len(out)-1] += " " + trimmed
		}
	}
	return out
}

// splitNumbered splits text on top-level numbered markers ("1.", "2)" ...)
// and returns the section bodies in order. Text before the first marker is
// ignored.
func splitNumbered(text string) []string {
	locs := numberedSectionRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	var out []string
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		out = append(out, strings.TrimSpace(text[loc[1]:end]))
	}
	return out
}

// label is a set of equivalent label spellings, lowercase, without colons.
type label []string

// labeledValue finds the first line starting with this label and returns
// everything after the colon up to the next label from all (or the next
// sub-heading), following the "until next label or section end" rule.
func labeledValue(body string, want label, all []label) (string, bool) {
	lines := strings.Split(body, "\n")
	start := -1
	first := ""
	for i, line := range lines {
		if rest, ok := matchLabel(line, want); ok {
			start = i + 1
			first = rest
			break
		}
	}
	if start == -1 {
		return "", false
	}
	var parts []string
	if first != "" {
		parts = append(parts, first)
	}
	for i := start; i < len(lines); i++ {
		if isLabelBoundary(lines[i], all) {
			break
		}
		trimmed := strings.TrimSpace(lines[i])
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), true
}

// matchLabel matches "Label: value" lines, tolerating bullet markers and
// bold asterisks around the label. The colon is required; prose that merely
// starts with a label word is not a label.
func matchLabel(line string, want label) (string, bool) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimLeft(trimmed, "-*• \t")
	lower := strings.ToLower(trimmed)
	for _, w := range want {
		if !strings.HasPrefix(lower, w) {
			continue
		}
		rest := trimmed[len(w):]
		rest = strings.TrimLeft(rest, "* \t")
		if !strings.HasPrefix(rest, ":") {
			continue
		}
		rest = strings.TrimPrefix(rest, ":")
		rest = strings.TrimLeft(rest, "* \t")
		return strings.TrimSpace(rest), true
	}
	return "", false
}

func isLabelBoundary(line string, all []label) bool {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") {
		return true
	}
	for _, l := range all {
		if _, ok := matchLabel(line, l); ok {
			return true
		}
	}
	return false
}

// listItems extracts a labeled sub-list: the label's value split on bullet
// markers, or comma-separated when no bullets are present.
func listItems(body string, want label, all []label) []string {
	value, ok := labeledValue(body, want, all)
	if !ok || value == "" {
		return nil
	}
	if items := bullets(value); len(items) > 0 {
		return items
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
