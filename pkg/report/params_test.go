package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"topofix-hq/topofix/pkg/dummy"
)

func mustAngleRow(t *testing.T, types ...string) string {
	t.Helper()
	row, ok := dummy.AngleRow(types)
	if !ok {
		t.Fatalf("AngleRow(%v) rejected", types)
	}
	return row
}

func mustDihedralRow(t *testing.T, types ...string) string {
	t.Helper()
	row, ok := dummy.DihedralRow(types)
	if !ok {
		t.Fatalf("DihedralRow(%v) rejected", types)
	}
	return row
}

func TestWriteParams_BothBlocks(t *testing.T) {
	angle := mustAngleRow(t, "CA", "CB", "CC")
	dihedral := mustDihedralRow(t, "CT1", "CT2", "CT3", "CT4")
	set := dummy.Set{Angles: []string{angle}, Dihedrals: []string{dihedral}}

	var buf bytes.Buffer
	if err := WriteParams(&buf, set); err != nil {
		t.Fatalf("WriteParams failed: %v", err)
	}

	want := "; Dummy parameters generated for topology errors\n\n" +
		"[ angletypes ]\n" +
		";      i        j        k  func       theta0       ktheta          ub0          kub\n" +
		angle + "\n" +
		"\n" +
		"[ dihedraltypes ]\n" +
		";      i        j        k        l  func         phi0         kphi  mult\n" +
		dihedral + "\n" +
		"\n" +
		"; End of dummy parameters\n"

	if got := buf.String(); got != want {
		t.Errorf("params mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteParams_AnglesOnly(t *testing.T) {
	set := dummy.Set{Angles: []string{mustAngleRow(t, "CA", "CB", "CC")}}

	var buf bytes.Buffer
	if err := WriteParams(&buf, set); err != nil {
		t.Fatalf("WriteParams failed: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "[ angletypes ]\n") {
		t.Errorf("missing angletypes block:\n%s", got)
	}
	if strings.Contains(got, "[ dihedraltypes ]") {
		t.Errorf("unexpected dihedraltypes block:\n%s", got)
	}
}

func TestWriteParams_DihedralsOnly(t *testing.T) {
	set := dummy.Set{Dihedrals: []string{mustDihedralRow(t, "CT1", "CT2", "CT3", "CT4")}}

	var buf bytes.Buffer
	if err := WriteParams(&buf, set); err != nil {
		t.Fatalf("WriteParams failed: %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "[ angletypes ]") {
		t.Errorf("unexpected angletypes block:\n%s", got)
	}
	if !strings.Contains(got, "[ dihedraltypes ]\n") {
		t.Errorf("missing dihedraltypes block:\n%s", got)
	}
}

func TestWriteParams_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteParams(&buf, dummy.Set{}); err != nil {
		t.Fatalf("WriteParams failed: %v", err)
	}

	want := "; Dummy parameters generated for topology errors\n\n; End of dummy parameters\n"
	if got := buf.String(); got != want {
		t.Errorf("params = %q, want %q", got, want)
	}
}

func TestSaveParams_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output", "dummy_parameters.itp")

	set := dummy.Set{Angles: []string{mustAngleRow(t, "CA", "CB", "CC")}}
	if err := SaveParams(path, set); err != nil {
		t.Fatalf("SaveParams failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading params: %v", err)
	}
	if !strings.HasSuffix(string(data), "; End of dummy parameters\n") {
		t.Errorf("params file missing footer: %q", string(data))
	}
}
