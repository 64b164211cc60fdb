package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeResults(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", FileName, err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	doc, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if doc.Exists() {
		t.Error("Exists() = true, want false for default document")
	}

	for _, key := range []string{"passed", "failed", "skipped"} {
		v := doc.Summary().Get(key)
		if !v.Exists() || v.Int() != 0 {
			t.Errorf("summary.%s = %q, want 0", key, v.Raw)
		}
	}
}

func TestLoad_MissingDirectory(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if doc.Exists() {
		t.Error("Exists() = true, want false")
	}
}

func TestLoad_ResultsDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(file)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if doc.Exists() {
		t.Error("Exists() = true, want false")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	writeResults(t, dir, `{"check_type":"terraform","summary":{"passed":5,"failed":1,"skipped":2}}`)

	doc, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !doc.Exists() {
		t.Error("Exists() = false, want true")
	}
	if want := filepath.Join(dir, FileName); doc.Path != want {
		t.Errorf("Path = %q, want %q", doc.Path, want)
	}
	if got := doc.Get("summary.failed").Int(); got != 1 {
		t.Errorf("summary.failed = %d, want 1", got)
	}
	if got := doc.Get("check_type").String(); got != "terraform" {
		t.Errorf("check_type = %q, want terraform", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "truncated object", content: `{"summary": {"passed": 1`},
		{name: "not json", content: "passed=1"},
		{name: "top-level array", content: `[{"summary":{}}]`},
		{name: "top-level number", content: `42`},
		{name: "summary is array", content: `{"summary":[1,2,3]}`},
		{name: "summary is null", content: `{"summary":null}`},
		{name: "summary is string", content: `{"summary":"ok"}`},
		{name: "duplicate summary count", content: `{"summary":{"failed":1,"failed":0}}`},
		{name: "duplicate escaped summary count", content: `{"summary":{"failed":1,"f\u0061iled":0}}`},
		{name: "duplicate summary", content: `{"summary":{"failed":1},"summary":{"failed":0}}`},
		{name: "invalid utf-8 in summary", content: "{\"summary\":{\"note\":\"\xff\xfe\",\"failed\":0}}"},
		{name: "invalid utf-8 outside summary", content: "{\"check_type\":\"\xc3\x28\"}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeResults(t, dir, tt.content)

			doc, err := Load(dir)
			if !errors.Is(err, ErrInputParse) {
				t.Fatalf("Load() error = %v, want ErrInputParse", err)
			}
			if doc != nil {
				t.Error("Load() returned a document alongside an error")
			}
		})
	}
}

func TestParse_AllowsRepeatedKeysInOtherObjects(t *testing.T) {
	content := `{"results":[{"id":"CKV_1"},{"id":"CKV_2"}],"summary":{"passed":1,"failed":0}}`
	if _, err := Parse("test.json", []byte(content)); err != nil {
		t.Errorf("Parse() error = %v, want nil", err)
	}
}

func TestLoad_ResultFileIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, FileName), 0o755); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); !errors.Is(err, ErrInputParse) {
		t.Errorf("Load() error = %v, want ErrInputParse", err)
	}
}

func TestRawSummary(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "keeps key order and extra keys",
			content: `{"summary":{"skipped":2,"passed":5,"parsing_errors":0,"failed":1}}`,
			want:    `{"skipped":2,"passed":5,"parsing_errors":0,"failed":1}`,
		},
		{
			name:    "partial summary",
			content: `{"summary":{"failed":2}}`,
			want:    `{"failed":2}`,
		},
		{
			name:    "absent summary",
			content: `{"results":{}}`,
			want:    `{}`,
		},
		{
			name:    "keeps number literals",
			content: `{"summary":{"passed":1.0,"failed":"3"}}`,
			want:    `{"passed":1.0,"failed":"3"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse("test.json", []byte(tt.content))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := string(doc.RawSummary()); got != tt.want {
				t.Errorf("RawSummary() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDefault_RawSummary(t *testing.T) {
	want := `{"passed":0,"failed":0,"skipped":0}`
	if got := string(Default().RawSummary()); got != want {
		t.Errorf("RawSummary() = %s, want %s", got, want)
	}
}
