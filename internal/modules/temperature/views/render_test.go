package views

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"ecadtemp-server/internal/modules/temperature/types"
)

func TestLoadTemplates_success(t *testing.T) {
	err := LoadTemplates()
	if err != nil {
		t.Fatalf("LoadTemplates() = %v; want nil", err)
	}
	if homeTmpl == nil {
		t.Fatal("LoadTemplates() left homeTmpl nil")
	}
}

func TestLoadTemplates_failure_sub(t *testing.T) {
	// Empty FS has no "templates" directory; fs.Sub fails.
	emptyFS := fstest.MapFS{}
	err := loadTemplatesFromFS(emptyFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(emptyFS, \"templates\") = nil; want error")
	}
}

func TestLoadTemplates_failure_parse(t *testing.T) {
	// FS with invalid template syntax; ParseFS fails.
	badFS := fstest.MapFS{
		"templates/home.html": {Data: []byte("{{ .")},
	}
	err := loadTemplatesFromFS(badFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(badFS, \"templates\") = nil; want error")
	}
}

func TestRenderHome_notLoaded(t *testing.T) {
	// Ensure templates are not loaded for this test.
	prev := homeTmpl
	homeTmpl = nil
	t.Cleanup(func() { homeTmpl = prev })

	var buf bytes.Buffer
	err := RenderHome(&buf, (*HomeData)(nil))
	if err == nil {
		t.Fatal("RenderHome() = nil; want error when templates not loaded")
	}
	if !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("err = %q; want message containing \"not loaded\"", err.Error())
	}
}

func TestRenderHome_emptyData(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	var buf bytes.Buffer
	err := RenderHome(&buf, &HomeData{})
	if err != nil {
		t.Fatalf("RenderHome(empty data) = %v; want nil", err)
	}
	out := buf.String()
	if out == "" {
		t.Fatal("RenderHome(empty data) produced empty output")
	}
	if !strings.Contains(out, "Daily Mean Temperature API") {
		t.Errorf("output missing page heading; got %q", out)
	}
	if !strings.Contains(out, "<!DOCTYPE html>") {
		t.Errorf("output missing DOCTYPE; got %q", out)
	}
}

func TestRenderHome_withData(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	data := &HomeData{
		Stations: []types.Station{
			{ID: 1, Name: "VAEXJOE", Country: "SE", Latitude: "+56:52:00", Longitude: "+014:48:00", Elevation: 166},
			{ID: 10, Name: "TALLINN", Country: "EE", Latitude: "+59:24:00", Longitude: "+024:36:00", Elevation: 44},
		},
	}

	var buf bytes.Buffer
	err := RenderHome(&buf, data)
	if err != nil {
		t.Fatalf("RenderHome(data) = %v; want nil", err)
	}
	out := buf.String()
	if !strings.Contains(out, "TALLINN") {
		t.Errorf("output missing station name; got %q", out)
	}
	if !strings.Contains(out, "VAEXJOE") {
		t.Errorf("output missing station name; got %q", out)
	}
	if !strings.Contains(out, "STANAME") {
		t.Errorf("output missing source column heading; got %q", out)
	}
	if !strings.Contains(out, "<table") {
		t.Errorf("output missing stations table; got %q", out)
	}
}

// Ensure RenderHome propagates write errors (e.g. closed writer).
func TestRenderHome_writeError(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	w := &failingWriter{err: io.ErrClosedPipe}
	err := RenderHome(w, &HomeData{})
	if err == nil {
		t.Fatal("RenderHome(failingWriter) = nil; want error")
	}
}

type failingWriter struct{ err error }

func (f *failingWriter) Write([]byte) (int, error) { return 0, f.err }
