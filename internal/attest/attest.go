package attest

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/Han-16/boolext/internal/boolfn"
	"github.com/Han-16/boolext/internal/word"
)

// ErrFrequency is returned for frequencies outside [0, 32).
var ErrFrequency = errors.New("attest: frequency out of range")

// Statement is the public part of an attestation.
type Statement struct {
	W        uint32
	Walsh    int
	Balanced bool
}

// Attestation is a statement with its proof.
type Attestation struct {
	Statement
	Proof groth16.Proof
}

// Prover holds the compiled circuit and its Groth16 keys.
type Prover struct {
	cs     constraint.ConstraintSystem
	pk     groth16.ProvingKey
	vk     groth16.VerifyingKey
	tester *boolfn.Tester[word.U32]
}

// Setup compiles the circuit and runs a (single-party) Groth16 setup.
func Setup() (*Prover, error) {
	var circuit WalshCircuit
	cs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
	if err != nil {
		return nil, fmt.Errorf("attest: compile: %w", err)
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, fmt.Errorf("attest: setup: %w", err)
	}
	return &Prover{cs: cs, pk: pk, vk: vk, tester: boolfn.MustNew[word.U32](vars, 0)}, nil
}

// Constraints returns the number of constraints of the compiled circuit.
func (p *Prover) Constraints() int { return p.cs.GetNbConstraints() }

// Assignment builds the full circuit assignment for f at frequency w.
func Assignment(st Statement, f word.U32) *WalshCircuit {
	a := publicAssignment(st)
	for x := 0; x < size; x++ {
		if f.Bit(uint(x)) {
			a.Table[x] = 1
		} else {
			a.Table[x] = 0
		}
	}
	return a
}

func publicAssignment(st Statement) *WalshCircuit {
	a := &WalshCircuit{
		W:        st.W,
		Walsh:    big.NewInt(int64(st.Walsh)),
		Balanced: 0,
	}
	if st.Balanced {
		a.Balanced = 1
	}
	return a
}

// Prove computes the statement for f at frequency w and proves it.
func (p *Prover) Prove(f word.U32, w uint32) (*Attestation, error) {
	if w >= size {
		return nil, fmt.Errorf("%w: %d", ErrFrequency, w)
	}
	st := Statement{
		W:        w,
		Walsh:    p.tester.Walsh(f, w),
		Balanced: p.tester.IsBalanced(f),
	}
	full, err := frontend.NewWitness(Assignment(st, f), ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("attest: witness: %w", err)
	}
	proof, err := groth16.Prove(p.cs, p.pk, full)
	if err != nil {
		return nil, fmt.Errorf("attest: prove: %w", err)
	}
	return &Attestation{Statement: st, Proof: proof}, nil
}

// Verify checks a.Proof against a.Statement.
func (p *Prover) Verify(a *Attestation) error {
	pub, err := frontend.NewWitness(publicAssignment(a.Statement), ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return fmt.Errorf("attest: public witness: %w", err)
	}
	if err := groth16.Verify(a.Proof, p.vk, pub); err != nil {
		return fmt.Errorf("attest: verify: %w", err)
	}
	return nil
}
