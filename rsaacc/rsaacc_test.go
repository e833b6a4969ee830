package rsaacc

import (
	"testing"

	"github.com/crypto-accum/accumulator/bigfield"
	"github.com/crypto-accum/accumulator/taskpool"
)

func smallSet() []bigfield.FieldInt {
	return []bigfield.FieldInt{
		bigfield.FieldIntFromInt64(2),
		bigfield.FieldIntFromInt64(3),
		bigfield.FieldIntFromInt64(5),
	}
}

func TestKeygenAndAccumulatePrivateMatchesPublic(t *testing.T) {
	key, err := Keygen(16, 0)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	pool := taskpool.New(4)
	defer pool.Close()

	set := smallSet()
	reps, err := GenRepresentatives(set, key.Public, pool)
	if err != nil {
		t.Fatalf("GenRepresentatives: %v", err)
	}

	privateAcc, err := AccumulatePrivate(reps, key.Secret, key.Public)
	if err != nil {
		t.Fatalf("AccumulatePrivate: %v", err)
	}
	publicAcc := AccumulatePublic(reps, key.Public)

	if !privateAcc.Equal(publicAcc) {
		t.Errorf("private and public accumulation disagree")
	}
}

func TestPrivateAndPublicWitnessesVerify(t *testing.T) {
	key, err := Keygen(16, 0)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	pool := taskpool.New(4)
	defer pool.Close()

	set := smallSet()
	reps, err := GenRepresentatives(set, key.Public, pool)
	if err != nil {
		t.Fatalf("GenRepresentatives: %v", err)
	}
	acc, err := AccumulatePrivate(reps, key.Secret, key.Public)
	if err != nil {
		t.Fatalf("AccumulatePrivate: %v", err)
	}

	privateWitnesses, err := PrivateWitnesses(reps, key.Secret, key.Public, pool)
	if err != nil {
		t.Fatalf("PrivateWitnesses: %v", err)
	}
	publicWitnesses, err := PublicWitnesses(reps, key.Public, pool)
	if err != nil {
		t.Fatalf("PublicWitnesses: %v", err)
	}

	for i, elem := range set {
		if !privateWitnesses[i].Equal(publicWitnesses[i]) {
			t.Errorf("element %d: private and public witnesses disagree", i)
		}
		ok, err := Verify(elem, privateWitnesses[i], acc, key.Public)
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if !ok {
			t.Errorf("element %d: private witness failed to verify", i)
		}
	}
}

func TestVerifyRejectsNonMember(t *testing.T) {
	key, err := Keygen(16, 0)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	pool := taskpool.New(4)
	defer pool.Close()

	set := smallSet()
	reps, err := GenRepresentatives(set, key.Public, pool)
	if err != nil {
		t.Fatalf("GenRepresentatives: %v", err)
	}
	acc, err := AccumulatePrivate(reps, key.Secret, key.Public)
	if err != nil {
		t.Fatalf("AccumulatePrivate: %v", err)
	}
	witnesses, err := PrivateWitnesses(reps, key.Secret, key.Public, pool)
	if err != nil {
		t.Fatalf("PrivateWitnesses: %v", err)
	}

	ok, err := Verify(bigfield.FieldIntFromInt64(7), witnesses[0], acc, key.Public)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("verification succeeded for a non-member element")
	}
}

func TestIntersectionWitnessCombinesTwoMemberships(t *testing.T) {
	key, err := Keygen(16, 0)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	pool := taskpool.New(4)
	defer pool.Close()

	set := smallSet()
	reps, err := GenRepresentatives(set, key.Public, pool)
	if err != nil {
		t.Fatalf("GenRepresentatives: %v", err)
	}
	acc, err := AccumulatePrivate(reps, key.Secret, key.Public)
	if err != nil {
		t.Fatalf("AccumulatePrivate: %v", err)
	}
	witnesses, err := PrivateWitnesses(reps, key.Secret, key.Public, pool)
	if err != nil {
		t.Fatalf("PrivateWitnesses: %v", err)
	}

	combined, err := IntersectionWitness(reps[0], reps[1], witnesses[0], witnesses[1], key.Public)
	if err != nil {
		t.Fatalf("IntersectionWitness: %v", err)
	}
	ok, err := VerifyIntersection(reps[0], reps[1], combined, acc, key.Public)
	if err != nil {
		t.Fatalf("VerifyIntersection: %v", err)
	}
	if !ok {
		t.Errorf("combined witness failed to verify membership of both elements")
	}
}
