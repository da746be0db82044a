package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"Column", "Dtype"}, true)

	table.AddRow("stellar_mass", "float64")
	table.AddRow("quiescent", "bool")
	table.AddRow("galaxy_id", "int64")

	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, rule and 3 rows, got %d lines: %q", len(lines), buf.String())
	}
	if lines[0] != "Column        Dtype" {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("missing rule line, got %q", lines[1])
	}
	if lines[2] != "stellar_mass  float64" {
		t.Errorf("row line = %q", lines[2])
	}
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewTable(&buf, nil, true).Render()

	if buf.String() != "" {
		t.Errorf("expected no output for a table with no headers, got %q", buf.String())
	}
}

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	kv := NewKeyValueTable(&buf, true)

	kv.AddRow("Model", "behroozi10")
	kv.AddRow("Redshift", "0")

	kv.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	// Values align on the widest key.
	if lines[0] != "Model:    behroozi10" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "Redshift: 0" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestKeyValueTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewKeyValueTable(&buf, true).Render()

	if buf.String() != "" {
		t.Errorf("expected no output for a key-value table with no rows, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	section := NewSection(&buf, "Calling sequence", true)
	section.AddLine("assign_stellar_mass")
	section.AddLine("assign_quiescent_designation")
	section.Render()

	output := buf.String()
	if !strings.HasPrefix(output, "Calling sequence\n") {
		t.Errorf("section output missing title, got %q", output)
	}
	if !strings.Contains(output, "  assign_stellar_mass\n") {
		t.Errorf("section output missing indented line, got %q", output)
	}
	if !strings.HasSuffix(output, "\n\n") {
		t.Errorf("section output should end with a blank line, got %q", output)
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	list := NewList(&buf, false, true)
	list.AddItem("behroozi10")
	list.AddItem("smhm_binary_sfr")
	list.Render()

	if !strings.Contains(buf.String(), "• behroozi10\n") {
		t.Errorf("list output missing bulleted item, got %q", buf.String())
	}

	buf.Reset()
	numbered := NewList(&buf, true, true)
	numbered.AddItem("behroozi10")
	numbered.AddItem("smhm_binary_sfr")
	numbered.Render()

	if !strings.Contains(buf.String(), "2. smhm_binary_sfr\n") {
		t.Errorf("list output missing numbered item, got %q", buf.String())
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Prebuilt models", true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected title and rule, got %q", buf.String())
	}
	if lines[0] != "Prebuilt models" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[1] != strings.Repeat("─", len("Prebuilt models")) {
		t.Errorf("rule line = %q", lines[1])
	}
}
