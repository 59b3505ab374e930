package correlate

import (
	"reflect"
	"testing"

	"topofix-hq/topofix/pkg/errlog"
	"topofix-hq/topofix/pkg/topology"
)

// angleTopology places "[ angles ]" on line 10 and an angle data row on
// line 12.
const angleTopology = `; generated fixture
;
;
;
;
;
;
;
;
[ angles ]
;  ai  aj  ak  funct
5  7  9  3
`

func angleAtomTable() map[int]topology.AtomInfo {
	return map[int]topology.AtomInfo{
		5: {Name: "CA", Type: "CA", ResidueNumber: "1", ResidueName: "ALA"},
		7: {Name: "CB", Type: "CB", ResidueNumber: "1", ResidueName: "ALA"},
		9: {Name: "CG", Type: "CC", ResidueNumber: "1", ResidueName: "ALA"},
	}
}

func TestCorrelate_AngleLine(t *testing.T) {
	index := topology.IndexSections(angleTopology)
	rec := &errlog.ErrorRecord{Number: 1, SourceLine: 12, Message: "No default U-B types"}

	indices, names, residues, types := New().Correlate(rec, index, angleTopology, angleAtomTable())

	if rec.Section != topology.SectionAngles {
		t.Errorf("Section = %q, want %q", rec.Section, topology.SectionAngles)
	}
	if want := []int{5, 7, 9}; !reflect.DeepEqual(indices, want) {
		t.Errorf("indices = %v, want %v", indices, want)
	}
	if want := []string{"CA", "CB", "CG"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if want := []string{"ALA1", "ALA1", "ALA1"}; !reflect.DeepEqual(residues, want) {
		t.Errorf("residues = %v, want %v", residues, want)
	}
	if want := []string{"CA", "CB", "CC"}; !reflect.DeepEqual(types, want) {
		t.Errorf("types = %v, want %v", types, want)
	}
}

func TestCorrelate_LineBeyondEndOfFile(t *testing.T) {
	index := topology.IndexSections(angleTopology)
	rec := &errlog.ErrorRecord{Number: 2, SourceLine: 13, Message: "No default U-B types"}

	indices, names, residues, types := New().Correlate(rec, index, angleTopology, angleAtomTable())

	if len(indices) != 0 || len(names) != 0 || len(residues) != 0 || len(types) != 0 {
		t.Errorf("results = (%v, %v, %v, %v), want all empty", indices, names, residues, types)
	}
	// The owning section is resolved before the line is read, so it is
	// still recorded.
	if rec.Section != topology.SectionAngles {
		t.Errorf("Section = %q, want %q", rec.Section, topology.SectionAngles)
	}
}

func TestCorrelate_NoOwningSection(t *testing.T) {
	index := topology.IndexSections(angleTopology)
	rec := &errlog.ErrorRecord{Number: 3, SourceLine: 5, Message: "noise"}

	indices, names, residues, types := New().Correlate(rec, index, angleTopology, angleAtomTable())

	if len(indices) != 0 || len(names) != 0 || len(residues) != 0 || len(types) != 0 {
		t.Errorf("results = (%v, %v, %v, %v), want all empty", indices, names, residues, types)
	}
	if rec.Section != "" {
		t.Errorf("Section = %q, want empty", rec.Section)
	}
}

func TestCorrelate_NonNumericToken(t *testing.T) {
	index := topology.IndexSections(angleTopology)
	// Line 11 is a comment whose first token is ";".
	rec := &errlog.ErrorRecord{Number: 4, SourceLine: 11, Message: "No default U-B types"}

	indices, _, _, types := New().Correlate(rec, index, angleTopology, angleAtomTable())

	if len(indices) != 0 || len(types) != 0 {
		t.Errorf("results = (%v, %v), want empty", indices, types)
	}
	if rec.Section != topology.SectionAngles {
		t.Errorf("Section = %q, want %q", rec.Section, topology.SectionAngles)
	}
}

func TestCorrelate_TooFewTokens(t *testing.T) {
	text := "[ angles ]\n5  7\n"
	index := topology.IndexSections(text)
	rec := &errlog.ErrorRecord{Number: 5, SourceLine: 2, Message: "No default U-B types"}

	indices, names, residues, types := New().Correlate(rec, index, text, angleAtomTable())

	if len(indices) != 0 || len(names) != 0 || len(residues) != 0 || len(types) != 0 {
		t.Errorf("results = (%v, %v, %v, %v), want all empty", indices, names, residues, types)
	}
}

func TestCorrelate_UnknownAtomPlaceholders(t *testing.T) {
	index := topology.IndexSections(angleTopology)
	table := angleAtomTable()
	delete(table, 7)
	rec := &errlog.ErrorRecord{Number: 6, SourceLine: 12, Message: "No default U-B types"}

	_, names, residues, types := New().Correlate(rec, index, angleTopology, table)

	if want := []string{"CA", "Unknown-7", "CG"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if want := []string{"ALA1", "Unknown", "ALA1"}; !reflect.DeepEqual(residues, want) {
		t.Errorf("residues = %v, want %v", residues, want)
	}
	if want := []string{"CA", "Unknown", "CC"}; !reflect.DeepEqual(types, want) {
		t.Errorf("types = %v, want %v", types, want)
	}
}

func TestCorrelate_EmptyAtomTable(t *testing.T) {
	index := topology.IndexSections(angleTopology)
	rec := &errlog.ErrorRecord{Number: 7, SourceLine: 12, Message: "No default U-B types"}

	indices, names, residues, types := New().Correlate(rec, index, angleTopology, map[int]topology.AtomInfo{})

	// Indices are still extracted; resolution needs a table.
	if want := []int{5, 7, 9}; !reflect.DeepEqual(indices, want) {
		t.Errorf("indices = %v, want %v", indices, want)
	}
	if names != nil || residues != nil || types != nil {
		t.Errorf("resolved lists = (%v, %v, %v), want nil", names, residues, types)
	}
}

func TestCorrelate_DihedralArity(t *testing.T) {
	text := `[ dihedrals ]
1  2  3  4  9

[ dihedrals ]
2  3  4  5  2
`
	index := topology.IndexSections(text)
	table := map[int]topology.AtomInfo{
		2: {Name: "C", Type: "C", ResidueNumber: "2", ResidueName: "GLY"},
		3: {Name: "N", Type: "NH1", ResidueNumber: "3", ResidueName: "PRO"},
		4: {Name: "CA", Type: "CP1", ResidueNumber: "3", ResidueName: "PRO"},
		5: {Name: "CB", Type: "CP2", ResidueNumber: "3", ResidueName: "PRO"},
	}
	rec := &errlog.ErrorRecord{Number: 8, SourceLine: 5, Message: "No default Improper Dih. types"}

	indices, _, _, types := New().Correlate(rec, index, text, table)

	if rec.Section != topology.SectionImproperDihedrals {
		t.Errorf("Section = %q, want %q", rec.Section, topology.SectionImproperDihedrals)
	}
	if want := []int{2, 3, 4, 5}; !reflect.DeepEqual(indices, want) {
		t.Errorf("indices = %v, want %v", indices, want)
	}
	if want := []string{"C", "NH1", "CP1", "CP2"}; !reflect.DeepEqual(types, want) {
		t.Errorf("types = %v, want %v", types, want)
	}
}

func TestCorrelate_BondArity(t *testing.T) {
	text := "[ bonds ]\n1  2  1\n"
	index := topology.IndexSections(text)
	table := map[int]topology.AtomInfo{
		1: {Name: "N", Type: "NH3", ResidueNumber: "1", ResidueName: "ALA"},
		2: {Name: "H1", Type: "HC", ResidueNumber: "1", ResidueName: "ALA"},
	}
	rec := &errlog.ErrorRecord{Number: 9, SourceLine: 2, Message: "No default Bond types"}

	indices, names, _, _ := New().Correlate(rec, index, text, table)

	if want := []int{1, 2}; !reflect.DeepEqual(indices, want) {
		t.Errorf("indices = %v, want %v", indices, want)
	}
	if want := []string{"N", "H1"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}
