package boolfn

import "github.com/Han-16/boolext/internal/word"

// PropertyTester is the set of property tests shared by every width, so
// callers can compare functions of different sizes with the same code.
type PropertyTester[W word.Word[W]] interface {
	Vars() int
	Eval(f W, x uint32) bool
	ANF(f W) W
	Degree(f W) int
	IsBalanced(f W) bool
	Walsh(f W, w uint32) int
	WalshSpectrum(f W) Spectrum
	Autocorrelation(f W, w uint32) int
	AutocorrelationSpectrum(f W) Spectrum
	SatisfiesSAC(f W) bool
	SatisfiesPropagation(f W, k int) bool
	IsCorrelationImmune(f W) bool
	IsLinear(f W) bool
}

var (
	_ PropertyTester[word.U32]  = (*Tester[word.U32])(nil)
	_ PropertyTester[word.U512] = (*Tester[word.U512])(nil)
	_ PropertyTester[word.Wide] = (*Tester[word.Wide])(nil)
)

// Properties summarizes a function.
type Properties struct {
	Function          string
	Vars              int
	Weight            int
	Degree            int
	Balanced          bool
	SAC               bool
	PropagationDegree int
	CorrelationImmune bool
	Linear            bool
	Nonlinearity      int
	AbsoluteIndicator int
}

// Analyze runs every property test on f.
func Analyze[W word.Word[W]](t *Tester[W], f W) Properties {
	f = t.Normalize(f)
	pd := t.MaxPropagationDegree(f)
	return Properties{
		Function:          f.String(),
		Vars:              t.Vars(),
		Weight:            f.OnesCount(),
		Degree:            t.Degree(f),
		Balanced:          t.IsBalanced(f),
		SAC:               pd >= 1,
		PropagationDegree: pd,
		CorrelationImmune: t.IsCorrelationImmune(f),
		Linear:            t.IsLinear(f),
		Nonlinearity:      t.Nonlinearity(f),
		AbsoluteIndicator: t.AbsoluteIndicator(f),
	}
}
