// Package attest proves facts about a private 5-variable Boolean function
// without revealing it: the value of one Walsh coefficient and whether the
// function is balanced. Proofs are Groth16 over BN254.
package attest

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
)

const (
	vars = 5
	size = 1 << vars
)

// WalshCircuit checks that the private truth table has Walsh coefficient
// Walsh at frequency W and that Balanced is 1 iff its weight is size/2.
//
// Walsh(f, w) = Σ_x (1 - 2·(f(x) ⊕ ⟨w, x⟩)).
type WalshCircuit struct {
	Table    [size]frontend.Variable
	W        frontend.Variable `gnark:",public"`
	Walsh    frontend.Variable `gnark:",public"`
	Balanced frontend.Variable `gnark:",public"`
}

func (c *WalshCircuit) Define(api frontend.API) error {
	wBits := bits.ToBinary(api, c.W, bits.WithNbDigits(vars)) // LSB-first

	var sum, weight frontend.Variable = 0, 0
	for x := 0; x < size; x++ {
		api.AssertIsBoolean(c.Table[x])
		weight = api.Add(weight, c.Table[x])

		// ⟨w, x⟩ is the XOR of the frequency bits selected by x.
		var dot frontend.Variable
		for j := 0; j < vars; j++ {
			if x&(1<<j) == 0 {
				continue
			}
			if dot == nil {
				dot = wBits[j]
			} else {
				dot = api.Xor(dot, wBits[j])
			}
		}
		diff := c.Table[x]
		if dot != nil {
			diff = api.Xor(c.Table[x], dot)
		}
		sum = api.Add(sum, api.Sub(1, api.Mul(2, diff)))
	}
	api.AssertIsEqual(sum, c.Walsh)

	api.AssertIsBoolean(c.Balanced)
	api.AssertIsEqual(api.IsZero(api.Sub(weight, size/2)), c.Balanced)
	return nil
}
