package rsaacc

import (
	"fmt"
	"math/big"

	"github.com/crypto-accum/accumulator/bigfield"
	"github.com/crypto-accum/accumulator/errs"
	"github.com/crypto-accum/accumulator/taskpool"
)

// GenRepresentatives maps every element of set to its prime representative,
// one call to pk.RepGen per element, fanned out across pool.
func GenRepresentatives(set []bigfield.FieldInt, pk PublicKey, pool *taskpool.Pool) ([]bigfield.FieldInt, error) {
	futs := make([]*taskpool.Future[bigfield.FieldInt], len(set))
	for i, e := range set {
		e := e
		futs[i] = taskpool.Submit(pool, func() (bigfield.FieldInt, error) {
			return pk.RepGen.Generate(e), nil
		})
	}
	reps := make([]bigfield.FieldInt, len(set))
	for i, f := range futs {
		r, err := f.Get()
		if err != nil {
			return nil, err
		}
		reps[i] = r
	}
	return reps, nil
}

// AccumulatePrivate computes base^(Π reps[i] mod phi(N)) mod N, using the
// factorization to work with an exponent reduced modulo phi(N).
func AccumulatePrivate(reps []bigfield.FieldInt, secret SecretKey, pk PublicKey) (bigfield.ModInt, error) {
	phi := secret.PhiN()
	exponent := bigfield.One(phi)
	for _, r := range reps {
		rMod := bigfield.NewModInt(r.Int(), phi)
		var err error
		exponent, err = exponent.Mul(rMod)
		if err != nil {
			return bigfield.ModInt{}, err
		}
	}
	return pk.Base.Pow(exponent.Value()), nil
}

// AccumulatePublic computes base^(Π reps) mod N sequentially, one
// exponentiation per element, since without phi(N) the exponents can't be
// combined first.
func AccumulatePublic(reps []bigfield.FieldInt, pk PublicKey) bigfield.ModInt {
	return accumulateExcluding(reps, len(reps), pk)
}

// accumulateExcluding accumulates every element of reps except the one at
// skipIndex (skipIndex >= len(reps) accumulates the whole set), mirroring
// RSAAccumulator.cpp::accumulateSetHelper.
func accumulateExcluding(reps []bigfield.FieldInt, skipIndex int, pk PublicKey) bigfield.ModInt {
	out := pk.Base
	end := skipIndex
	if end > len(reps) {
		end = len(reps)
	}
	for i := 0; i < end; i++ {
		out = out.Pow(reps[i].Int())
	}
	for i := skipIndex + 1; i < len(reps); i++ {
		out = out.Pow(reps[i].Int())
	}
	return out
}

// PrivateWitnesses computes, for every element, base^(left[i]*right[i+1])
// mod N where left/right are prefix products of reps mod phi(N), via two
// parallel sweeps submitted to pool.
func PrivateWitnesses(reps []bigfield.FieldInt, secret SecretKey, pk PublicKey, pool *taskpool.Pool) ([]bigfield.ModInt, error) {
	phi := secret.PhiN()

	leftFut := taskpool.Submit(pool, func() ([]bigfield.ModInt, error) {
		return prefixProducts(reps, phi, false), nil
	})
	rightFut := taskpool.Submit(pool, func() ([]bigfield.ModInt, error) {
		return prefixProducts(reps, phi, true), nil
	})
	left, err := leftFut.Get()
	if err != nil {
		return nil, err
	}
	right, err := rightFut.Get()
	if err != nil {
		return nil, err
	}

	witnessFuts := make([]*taskpool.Future[bigfield.ModInt], len(reps))
	for i := range reps {
		i := i
		witnessFuts[i] = taskpool.Submit(pool, func() (bigfield.ModInt, error) {
			exp, err := left[i].Mul(right[i+1])
			if err != nil {
				return bigfield.ModInt{}, err
			}
			return pk.Base.Pow(exp.Value()), nil
		})
	}
	witnesses := make([]bigfield.ModInt, len(reps))
	for i, f := range witnessFuts {
		w, err := f.Get()
		if err != nil {
			return nil, err
		}
		witnesses[i] = w
	}
	return witnesses, nil
}

// prefixProducts returns len(reps)+1 running products mod phi: index i is
// Π reps[0:i] when reversed=false, or Π reps[i:] when reversed=true.
func prefixProducts(reps []bigfield.FieldInt, phi *big.Int, reversed bool) []bigfield.ModInt {
	out := make([]bigfield.ModInt, len(reps)+1)
	one := bigfield.One(phi)
	if !reversed {
		out[0] = one
		for i := 1; i <= len(reps); i++ {
			out[i], _ = out[i-1].Mul(bigfield.NewModInt(reps[i-1].Int(), phi))
		}
		return out
	}
	out[len(reps)] = one
	for i := len(reps) - 1; i >= 0; i-- {
		out[i], _ = out[i+1].Mul(bigfield.NewModInt(reps[i].Int(), phi))
	}
	return out
}

// PublicWitnessOne computes the witness for reps[index] using only the
// public key: accumulate every other element sequentially.
func PublicWitnessOne(reps []bigfield.FieldInt, index int, pk PublicKey) bigfield.ModInt {
	return accumulateExcluding(reps, index, pk)
}

// PublicWitnesses computes a witness per element, fanning n independent
// accumulate-the-rest computations out across pool.
func PublicWitnesses(reps []bigfield.FieldInt, pk PublicKey, pool *taskpool.Pool) ([]bigfield.ModInt, error) {
	futs := make([]*taskpool.Future[bigfield.ModInt], len(reps))
	for i := range reps {
		i := i
		futs[i] = taskpool.Submit(pool, func() (bigfield.ModInt, error) {
			return PublicWitnessOne(reps, i, pk), nil
		})
	}
	witnesses := make([]bigfield.ModInt, len(reps))
	for i, f := range futs {
		w, err := f.Get()
		if err != nil {
			return nil, err
		}
		witnesses[i] = w
	}
	return witnesses, nil
}

// Verify re-derives element's representative and checks witness^rep == acc
// under pk's modulus.
func Verify(element bigfield.FieldInt, witness, acc bigfield.ModInt, pk PublicKey) (bool, error) {
	if witness.Modulus().Cmp(pk.Modulus) != 0 || acc.Modulus().Cmp(pk.Modulus) != 0 {
		return false, fmt.Errorf("rsaacc: witness/accumulator modulus does not match public key: %w", errs.ErrModulusMismatch)
	}
	rep := pk.RepGen.Generate(element)
	candidate := witness.Pow(rep.Int())
	return candidate.Equal(acc), nil
}
