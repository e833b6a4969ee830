// Package serialize implements the binary file formats spec.md §6 assigns to
// the reference test harness, the same way the teacher round-trips proof and
// key material as raw fixed-width blobs via encoding/binary
// (giuliop-AlgoPlonk/helper.go, utils/utils.go), rather than a general
// serialization framework like gob or protobuf.
package serialize

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/crypto-accum/accumulator/bmacc"
	"github.com/crypto-accum/accumulator/curve"
	"github.com/crypto-accum/accumulator/errs"
)

// WriteBMSecretKey writes sk.S as 4 little-endian 64-bit words (spec.md §6).
func WriteBMSecretKey(w io.Writer, sk bmacc.SecretKey) error {
	limbs := scalarToLimbs(sk.S)
	for _, limb := range limbs {
		if err := binary.Write(w, binary.LittleEndian, limb); err != nil {
			return fmt.Errorf("serialize: writing BM secret key: %w", errs.ErrIO)
		}
	}
	return nil
}

// ReadBMSecretKey reads a secret key written by WriteBMSecretKey.
func ReadBMSecretKey(r io.Reader) (bmacc.SecretKey, error) {
	var limbs [4]uint64
	for i := range limbs {
		if err := binary.Read(r, binary.LittleEndian, &limbs[i]); err != nil {
			return bmacc.SecretKey{}, fmt.Errorf("serialize: reading BM secret key: %w", errs.ErrIO)
		}
	}
	return bmacc.SecretKey{S: limbsToScalar(limbs)}, nil
}

// WriteBMPublicKey writes the length-prefixed G1/G2 power vectors (spec.md
// §6: "size_t length prefix q, then q G1 elements, then q G2 elements").
func WriteBMPublicKey(w io.Writer, pk bmacc.PublicKey) error {
	q := uint64(len(pk.PK1))
	if uint64(len(pk.PK2)) != q {
		return fmt.Errorf("serialize: BM public key has mismatched G1/G2 lengths (%d vs %d): %w",
			len(pk.PK1), len(pk.PK2), errs.ErrCrypto)
	}
	if err := binary.Write(w, binary.LittleEndian, q); err != nil {
		return fmt.Errorf("serialize: writing BM public key length prefix: %w", errs.ErrIO)
	}
	for _, p := range pk.PK1 {
		if _, err := w.Write(p.Bytes()); err != nil {
			return fmt.Errorf("serialize: writing BM public key G1 element: %w", errs.ErrIO)
		}
	}
	for _, p := range pk.PK2 {
		if _, err := w.Write(p.Bytes()); err != nil {
			return fmt.Errorf("serialize: writing BM public key G2 element: %w", errs.ErrIO)
		}
	}
	return nil
}

// ReadBMPublicKey reads a public key written by WriteBMPublicKey.
func ReadBMPublicKey(r io.Reader) (bmacc.PublicKey, error) {
	var q uint64
	if err := binary.Read(r, binary.LittleEndian, &q); err != nil {
		return bmacc.PublicKey{}, fmt.Errorf("serialize: reading BM public key length prefix: %w", errs.ErrIO)
	}

	pk1 := make([]curve.G1, q)
	buf1 := make([]byte, curve.G1ByteSize())
	for i := range pk1 {
		if _, err := io.ReadFull(r, buf1); err != nil {
			return bmacc.PublicKey{}, fmt.Errorf("serialize: reading BM public key G1 element %d: %w", i, errs.ErrIO)
		}
		p, err := curve.G1FromBytes(buf1)
		if err != nil {
			return bmacc.PublicKey{}, fmt.Errorf("serialize: decoding BM public key G1 element %d: %w", i, err)
		}
		pk1[i] = p
	}

	pk2 := make([]curve.G2, q)
	buf2 := make([]byte, curve.G2ByteSize())
	for i := range pk2 {
		if _, err := io.ReadFull(r, buf2); err != nil {
			return bmacc.PublicKey{}, fmt.Errorf("serialize: reading BM public key G2 element %d: %w", i, errs.ErrIO)
		}
		p, err := curve.G2FromBytes(buf2)
		if err != nil {
			return bmacc.PublicKey{}, fmt.Errorf("serialize: decoding BM public key G2 element %d: %w", i, err)
		}
		pk2[i] = p
	}

	return bmacc.PublicKey{PK1: pk1, PK2: pk2}, nil
}

// WriteScalarFile writes scalars as the concatenation of their fixed-width
// serializations, the "random scalar file" benchmark format of spec.md §6.
func WriteScalarFile(w io.Writer, scalars []curve.Scalar) error {
	for i, s := range scalars {
		if _, err := w.Write(s.Bytes()); err != nil {
			return fmt.Errorf("serialize: writing scalar %d: %w", i, errs.ErrIO)
		}
	}
	return nil
}

// ReadScalarFile reads every scalar written by WriteScalarFile.
func ReadScalarFile(r io.Reader) ([]curve.Scalar, error) {
	var scalars []curve.Scalar
	buf := make([]byte, curve.ScalarByteSize())
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("serialize: reading scalar %d: %w", len(scalars), errs.ErrIO)
		}
		s, err := curve.ScalarFromBytes(buf)
		if err != nil {
			return nil, fmt.Errorf("serialize: decoding scalar %d: %w", len(scalars), err)
		}
		scalars = append(scalars, s)
	}
	return scalars, nil
}

// WriteBigIntFile writes one ASCII base-10 integer per line, the "random
// bigint file" benchmark format of spec.md §6.
func WriteBigIntFile(w io.Writer, ints []*big.Int) error {
	bw := bufio.NewWriter(w)
	for i, v := range ints {
		if _, err := fmt.Fprintln(bw, v.String()); err != nil {
			return fmt.Errorf("serialize: writing bigint %d: %w", i, errs.ErrIO)
		}
	}
	return bw.Flush()
}

// ReadBigIntFile reads every integer written by WriteBigIntFile.
func ReadBigIntFile(r io.Reader) ([]*big.Int, error) {
	scanner := bufio.NewScanner(r)
	var ints []*big.Int
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, ok := new(big.Int).SetString(line, 10)
		if !ok {
			return nil, fmt.Errorf("serialize: parsing bigint line %q: %w", line, errs.ErrParse)
		}
		ints = append(ints, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("serialize: scanning bigint file: %w", errs.ErrIO)
	}
	return ints, nil
}

// WriteBMSecretKeyToFile writes sk to the file at path.
func WriteBMSecretKeyToFile(path string, sk bmacc.SecretKey) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("serialize: creating %s: %w", path, errs.ErrIO)
	}
	defer f.Close()
	return WriteBMSecretKey(f, sk)
}

// ReadBMSecretKeyFromFile reads a secret key from the file at path.
func ReadBMSecretKeyFromFile(path string) (bmacc.SecretKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return bmacc.SecretKey{}, fmt.Errorf("serialize: opening %s: %w", path, errs.ErrIO)
	}
	defer f.Close()
	return ReadBMSecretKey(f)
}

func scalarToLimbs(s curve.Scalar) [4]uint64 {
	v := s.BigInt()
	var limbs [4]uint64
	mask := new(big.Int).SetUint64(^uint64(0))
	tmp := new(big.Int).Set(v)
	for i := 0; i < 4; i++ {
		word := new(big.Int).And(tmp, mask)
		limbs[i] = word.Uint64()
		tmp.Rsh(tmp, 64)
	}
	return limbs
}

func limbsToScalar(limbs [4]uint64) curve.Scalar {
	v := new(big.Int)
	for i := 3; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(limbs[i]))
	}
	return curve.ScalarFromBigInt(v)
}
