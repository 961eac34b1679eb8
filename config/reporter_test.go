package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Close(t *testing.T) {
	dir := t.TempDir()
	rpt, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if rpt.Name() != filepath.Join(dir, "report.zip") {
		t.Errorf("Name() = %s", rpt.Name())
	}

	stored := filepath.Join(dir, "final.log")
	if err := os.WriteFile(stored, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}

	rpt.Store("final.log", stored)
	rpt.Store("final.log", stored) // same path is fine
	rpt.Store("missing.log", filepath.Join(dir, "missing.log"))
	rpt.Store("directory", dir)
	rpt.StoreData("source.html", []byte("<html/>"))
	rpt.StoreData("source.html", []byte("<p/>"))

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, rpt.Name())
	if files["final.log"] != "log line" {
		t.Errorf("final.log = %q", files["final.log"])
	}
	if files["source.html"] != "<html/>" {
		t.Errorf("source.html = %q", files["source.html"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file must be skipped")
	}
	if _, ok := files["directory"]; ok {
		t.Error("directory must be skipped")
	}

	var versioned int
	for name := range files {
		if strings.HasPrefix(name, "source.html-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("expected one versioned data entry, got %d", versioned)
	}

	manifest := files["MANIFEST"]
	for _, want := range []string{"final.log", "source.html", "<7 bytes>"} {
		if !strings.Contains(manifest, want) {
			t.Errorf("MANIFEST does not contain %q:\n%s", want, manifest)
		}
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("final.log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	r.Store("final.log", "b.log")
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	// all methods are safe on nil report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if r.Name() != "" {
		t.Error("expected empty name")
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
