package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tcglabels "github.com/alnah/go-tcglabels"
)

var testNow = time.Date(2026, time.October, 18, 14, 0, 0, 0, time.UTC)

const testOrders = "FirstName,LastName,Address1,Address2,City,State,PostalCode,Country\n" +
	"Jane,Doe,1 Test Ave,None,Metropolis,NY,10001,USA\n" +
	"John,Roe,2 Side St,Apt 4,Gotham,NJ,07001,USA\n"

// fakeRenderer stands in for headless Chrome.
type fakeRenderer struct {
	records  []tcglabels.Record
	template string
	err      error
	closed   bool
}

func (f *fakeRenderer) Render(_ context.Context, records []tcglabels.Record, templatePath, _ string) ([]byte, error) {
	f.records = records
	f.template = templatePath
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.7 fake"), nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

// testEnv is an Environment with captured output and a fixed environment.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	vars   map[string]string
}

func newTestEnv(t *testing.T, vars map[string]string) *testEnv {
	t.Helper()
	if vars == nil {
		vars = map[string]string{}
	}
	te := &testEnv{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}, vars: vars}
	te.Environment = &Environment{
		Now:    func() time.Time { return testNow },
		Stdout: te.stdout,
		Stderr: te.stderr,
		Getenv: func(k string) string { return te.vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(te.vars))
			for k, v := range te.vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return te
}

// labelWorkspace writes the label files, an order export and a config that
// points at them with absolute paths. Returns the directory and config path.
func labelWorkspace(t *testing.T) (dir, configPath string) {
	t.Helper()
	dir = t.TempDir()

	files := map[string]string{
		"return_address.txt":  "123 Main St\nSpringfield, IL 62704",
		"label_template.html": "{{ return_address }}",
		"style.css":           "@page { size: 4in 6in; }",
		"orders.csv":          testOrders,
	}
	for name, content := range files {
		writeFile(t, filepath.Join(dir, name), content)
	}

	cfg := strings.Join([]string{
		"files:",
		"  returnAddress: " + yamlPath(filepath.Join(dir, "return_address.txt")),
		"  template: " + yamlPath(filepath.Join(dir, "label_template.html")),
		"  stylesheet: " + yamlPath(filepath.Join(dir, "style.css")),
		"output:",
		"  dir: " + yamlPath(dir),
		"",
	}, "\n")
	configPath = filepath.Join(dir, "labels.yaml")
	writeFile(t, configPath, cfg)
	return dir, configPath
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// yamlPath single-quotes p so Windows backslashes survive YAML.
func yamlPath(p string) string {
	return "'" + strings.ReplaceAll(p, "'", "''") + "'"
}
