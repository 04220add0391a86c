// Package classes holds reference tables of 5-variable functions, one
// representative per equivalence class, and matches functions against them
// by their absolute Walsh and autocorrelation spectra.
package classes

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/word"
)

//go:embed affine5.yaml
var affine5 []byte

// ErrTable is returned for malformed class tables.
var ErrTable = errors.New("classes: invalid table")

// Signature identifies a function up to the spectral invariants used for
// classification.
type Signature struct {
	Walsh           boolfn.Spectrum
	Autocorrelation boolfn.Spectrum
}

// Equal reports whether both spectra match.
func (s Signature) Equal(o Signature) bool {
	return s.Walsh.Equal(o.Walsh) && s.Autocorrelation.Equal(o.Autocorrelation)
}

// SignatureOf computes the signature of f.
func SignatureOf[W word.Word[W]](t *boolfn.Tester[W], f W) Signature {
	return Signature{
		Walsh:           t.WalshSpectrum(f),
		Autocorrelation: t.AutocorrelationSpectrum(f),
	}
}

type tableFile struct {
	Name    string   `yaml:"name"`
	Vars    int      `yaml:"vars"`
	Classes []string `yaml:"classes"`
}

// Table is a list of class representatives with precomputed signatures.
// It is read-only after construction.
type Table struct {
	Name            string
	Representatives []word.U32
	signatures      []Signature
	tester          *boolfn.Tester[word.U32]
}

// Default returns the embedded table of the 48 affine equivalence classes
// of 5-variable functions.
func Default() *Table {
	t, err := Parse(affine5)
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a YAML class table from path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classes: read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a YAML class table.
func Parse(data []byte) (*Table, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTable, err)
	}
	if tf.Vars != 5 {
		return nil, fmt.Errorf("%w: only 5-variable tables are supported, got %d", ErrTable, tf.Vars)
	}
	if len(tf.Classes) == 0 {
		return nil, fmt.Errorf("%w: no classes", ErrTable)
	}
	reps := make([]word.U32, len(tf.Classes))
	for i, s := range tf.Classes {
		v, err := word.ParseU32(s)
		if err != nil {
			return nil, fmt.Errorf("%w: class %d: %w", ErrTable, i, err)
		}
		reps[i] = v
	}
	return New(tf.Name, reps), nil
}

// New builds a table from representatives.
func New(name string, reps []word.U32) *Table {
	t := &Table{
		Name:            name,
		Representatives: reps,
		signatures:      make([]Signature, len(reps)),
		tester:          boolfn.MustNew[word.U32](5, 0),
	}
	for i, r := range reps {
		t.signatures[i] = SignatureOf(t.tester, r)
	}
	return t
}

// Len returns the number of classes.
func (t *Table) Len() int { return len(t.Representatives) }

// Signature returns the signature of class i.
func (t *Table) Signature(i int) Signature { return t.signatures[i] }

// Match returns the indices of the classes whose signature equals sig.
func (t *Table) Match(sig Signature) []int {
	var out []int
	for i, s := range t.signatures {
		if s.Equal(sig) {
			out = append(out, i)
		}
	}
	return out
}

// Classify returns the indices of the classes matching f.
func (t *Table) Classify(f word.U32) []int {
	return t.Match(SignatureOf(t.tester, f))
}
