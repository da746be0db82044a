package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Rendering widgets for the CLI: aligned tables for schema and cache
// listings, key-value summaries for model inspection, titled sections and
// plain lists. Every constructor takes a noColor switch so output stays
// plain when piped.

func styled(noColor bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if noColor {
		c.DisableColor()
	}
	return c
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Table renders rows column-aligned under a header line and a rule.
type Table struct {
	w       io.Writer
	headers []string
	rows    [][]string
	noColor bool
}

func NewTable(w io.Writer, headers []string, noColor bool) *Table {
	return &Table{w: w, headers: headers, noColor: noColor}
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	last := len(t.headers) - 1
	head := styled(t.noColor, color.Bold, color.FgCyan)
	for i, h := range t.headers {
		if i > 0 {
			fmt.Fprint(t.w, "  ")
		}
		if i == last {
			head.Fprint(t.w, h)
		} else {
			head.Fprint(t.w, pad(h, widths[i]))
		}
	}
	fmt.Fprintln(t.w)

	rule := make([]string, len(widths))
	for i, width := range widths {
		rule[i] = strings.Repeat("─", width)
	}
	styled(t.noColor, color.FgHiBlack).Fprintln(t.w, strings.Join(rule, "  "))

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				fmt.Fprint(t.w, "  ")
			}
			if i == last {
				fmt.Fprint(t.w, cell)
			} else {
				fmt.Fprint(t.w, pad(cell, widths[i]))
			}
		}
		fmt.Fprintln(t.w)
	}
}

// KeyValueTable renders aligned "key: value" lines.
type KeyValueTable struct {
	w       io.Writer
	keys    []string
	values  []string
	noColor bool
}

func NewKeyValueTable(w io.Writer, noColor bool) *KeyValueTable {
	return &KeyValueTable{w: w, noColor: noColor}
}

func (t *KeyValueTable) AddRow(key, value string) {
	t.keys = append(t.keys, key)
	t.values = append(t.values, value)
}

func (t *KeyValueTable) Render() {
	widest := 0
	for _, key := range t.keys {
		if len(key) > widest {
			widest = len(key)
		}
	}

	keyStyle := styled(t.noColor, color.FgCyan)
	for i, key := range t.keys {
		keyStyle.Fprint(t.w, pad(key+":", widest+1))
		fmt.Fprintf(t.w, " %s\n", t.values[i])
	}
}

// Section renders a titled block of indented lines, followed by a blank
// line.
type Section struct {
	w       io.Writer
	title   string
	lines   []string
	noColor bool
}

func NewSection(w io.Writer, title string, noColor bool) *Section {
	return &Section{w: w, title: title, noColor: noColor}
}

func (s *Section) AddLine(line string) {
	s.lines = append(s.lines, line)
}

func (s *Section) Render() {
	styled(s.noColor, color.Bold, color.FgCyan).Fprintln(s.w, s.title)
	for _, line := range s.lines {
		fmt.Fprintf(s.w, "  %s\n", line)
	}
	fmt.Fprintln(s.w)
}

// List renders a bulleted (or numbered) list of items.
type List struct {
	w        io.Writer
	items    []string
	numbered bool
	noColor  bool
}

func NewList(w io.Writer, numbered, noColor bool) *List {
	return &List{w: w, numbered: numbered, noColor: noColor}
}

func (l *List) AddItem(item string) {
	l.items = append(l.items, item)
}

func (l *List) Render() {
	marker := styled(l.noColor, color.FgCyan)
	for i, item := range l.items {
		if l.numbered {
			marker.Fprintf(l.w, "%d. ", i+1)
		} else {
			marker.Fprint(l.w, "• ")
		}
		fmt.Fprintln(l.w, item)
	}
}

// Header writes a bold title over a rule of matching width.
func Header(w io.Writer, title string, noColor bool) {
	styled(noColor, color.Bold, color.FgCyan).Fprintln(w, title)
	styled(noColor, color.FgHiBlack).Fprintln(w, strings.Repeat("─", len(title)))
}
