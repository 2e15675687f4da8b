package manifest

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`{"files": {"main.js": "/static/main.abc123.js", "main.css": "/static/main.def456.css"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Files) != 2 || m.Files["main.js"] != "/static/main.abc123.js" {
		t.Fatalf("files: %v", m.Files)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{"files": `)); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
	if _, err := Parse([]byte(`<html>`)); err == nil {
		t.Fatalf("expected error for non-JSON body")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	m, err := Parse([]byte(`{}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := m.URLs(); len(got) != 0 {
		t.Fatalf("URLs of empty manifest: %v", got)
	}
}

func TestURLsDedupesAndSorts(t *testing.T) {
	m := &Manifest{
		Files: map[string]string{
			"main.js":     "/static/b.js",
			"runtime.js":  "/static/a.js",
			"main.js.map": "",
		},
		Entrypoints: []string{"/static/a.js", "/static/c.js"},
	}
	want := []string{"/static/a.js", "/static/b.js", "/static/c.js"}
	if got := m.URLs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("URLs: %v, want %v", got, want)
	}
}

func TestURLsNilManifest(t *testing.T) {
	var m *Manifest
	if got := m.URLs(); got != nil {
		t.Fatalf("nil manifest URLs: %v", got)
	}
}

func TestMerge(t *testing.T) {
	core := []string{"/", "/index.html", ""}
	discovered := []string{"/static/main.js", "/index.html", "", "/static/main.js"}
	want := []string{"/", "/index.html", "/static/main.js"}
	if got := Merge(core, discovered); !reflect.DeepEqual(got, want) {
		t.Fatalf("Merge: %v, want %v", got, want)
	}
}

func TestMergeEmptyInputs(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Fatalf("Merge(nil, nil): %v", got)
	}
	if got := Merge(nil, []string{"/a"}); !reflect.DeepEqual(got, []string{"/a"}) {
		t.Fatalf("Merge(nil, [/a]): %v", got)
	}
}
