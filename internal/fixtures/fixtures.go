// Package fixtures provides the shared input pair used by integration
// tests: a small two-residue topology and a diagnostic log referencing
// one row in each interaction family.
package fixtures

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleErrorLog holds three preprocessor diagnostics pointing at the
// angle row (line 12), the proper dihedral row (line 15), and the
// improper dihedral row (line 18) of SampleTopology.
const SampleErrorLog = `ERROR 1 [file topol.top, line 12]:
  No default Angle types

ERROR 2 [file topol.top, line 15]:
  No default Proper Dih. types

ERROR 3 [file topol.top, line 18]:
  No default Improper Dih. types
`

// SampleTopology is a four-atom topology with every indexed section
// present and both dihedral blocks. Line numbers are load-bearing:
// SampleErrorLog points into this exact layout.
const SampleTopology = `; generated fixture
[ atoms ]
     1         CA      1    ALA      N
     2         CB      1    ALA     CA
     3         CC      2    GLY      C
     4         CD      2    GLY      O

[ bonds ]
     1     2     1

[ angles ]
     1     2     3     5

[ dihedrals ]
     1     2     3     4     9

[ dihedrals ]
     2     3     4     1     2
`

// Expected analysis outcome over the sample pair.
const (
	SampleErrorCount    = 3
	SampleAngleRows     = 1
	SampleDihedralRows  = 2
	SampleAtomCount     = 4
	SampleSectionsFound = 5
)

// WriteInputs writes the sample pair into dir and returns both paths.
func WriteInputs(t *testing.T, dir string) (errorFile, topologyFile string) {
	t.Helper()

	errorFile = filepath.Join(dir, "errors.txt")
	topologyFile = filepath.Join(dir, "topol.top")

	if err := os.WriteFile(errorFile, []byte(SampleErrorLog), 0644); err != nil {
		t.Fatalf("failed to write error log fixture: %v", err)
	}
	if err := os.WriteFile(topologyFile, []byte(SampleTopology), 0644); err != nil {
		t.Fatalf("failed to write topology fixture: %v", err)
	}

	return errorFile, topologyFile
}
