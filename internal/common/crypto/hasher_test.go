package crypto_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mzhuravlev/feedback-board/internal/common/crypto"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if hash == "password123" {
		t.Error("expected hash to differ from plaintext")
	}

	if err := hasher.Compare(hash, "password123"); err != nil {
		t.Errorf("expected matching password to compare, got %v", err)
	}

	if err := hasher.Compare(hash, "wrongpassword"); err == nil {
		t.Error("expected mismatched password to fail")
	}
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first == second {
		t.Error("expected salted hashes to differ")
	}
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := crypto.NewBcryptHasher(1000)

	hash, err := hasher.Hash("password123")
	if err != nil {
		t.Fatalf("expected no error with fallback cost, got %v", err)
	}

	if err := hasher.Compare(hash, "password123"); err != nil {
		t.Errorf("expected matching password to compare, got %v", err)
	}
}

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := crypto.NewUUIDGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if first == "" || second == "" {
		t.Error("expected non-empty ids")
	}

	if first == second {
		t.Error("expected ids to be unique")
	}
}
