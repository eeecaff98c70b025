package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/kweiss/xwinctl/internal/model"
	"gopkg.in/yaml.v3"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := ListResult{
		Display: ":0",
		TS:      1707500000,
		Windows: []model.Window{
			{ID: 0x2e00005, Title: "Mozilla Firefox", Class: "Firefox", Bounds: [4]int{10, 20, 1280, 720}, Mapped: true},
		},
	}

	out := captureStdout(t, func() error { return PrintYAML(result) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}

	var decoded ListResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.Display != ":0" {
		t.Errorf("display: got %q, want %q", decoded.Display, ":0")
	}
	if len(decoded.Windows) != 1 {
		t.Fatalf("windows: got %d, want 1", len(decoded.Windows))
	}
	if decoded.Windows[0].Title != "Mozilla Firefox" {
		t.Errorf("title: got %q", decoded.Windows[0].Title)
	}
}

func TestPrint_JSONFormat(t *testing.T) {
	origFormat := OutputFormat
	defer func() { OutputFormat = origFormat }()
	OutputFormat = FormatJSON

	out := captureStdout(t, func() error {
		return Print(ActionResult{OK: true, Action: "raise", Pattern: "vim"})
	})

	// Compact JSON is a single line
	if bytes.Count([]byte(out), []byte("\n")) != 1 {
		t.Errorf("compact JSON should be one line, got:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte(`"action":"raise"`)) {
		t.Errorf("missing action field in output: %s", out)
	}
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	origFormat := OutputFormat
	defer func() { OutputFormat = origFormat }()
	OutputFormat = Format("xml")

	if err := Print(ActionResult{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestListResult_OmitEmpty(t *testing.T) {
	result := ListResult{
		TS:      123,
		Windows: []model.Window{},
	}
	data, err := yaml.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["display"]; ok {
		t.Error("empty display should be omitted")
	}
	if _, ok := m["ts"]; !ok {
		t.Error("ts should always be present")
	}
}

func TestWindow_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(model.Window{ID: 1, Title: "x"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"class", "pid", "focused"} {
		if _, ok := m[key]; ok {
			t.Errorf("zero %s should be omitted", key)
		}
	}
}

func TestMarshalYAML(t *testing.T) {
	s := MarshalYAML(WaitResult{OK: true, Action: "wait", Pattern: "emacs", Elapsed: "0.5s"})
	var decoded WaitResult
	if err := yaml.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("not valid YAML: %v", err)
	}
	if decoded.Pattern != "emacs" {
		t.Errorf("pattern: got %q", decoded.Pattern)
	}
}
