package crypto

import (
	"errors"
	"strings"
	"testing"
)

// lightArgon2 keeps test runs fast; production parameters live in NewArgon2.
func lightArgon2(t *testing.T) *Argon2 {
	t.Helper()
	return &Argon2{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func setupPasswordHash(t *testing.T, h PasswordHandler, password string) string {
	t.Helper()
	hash, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Failed to setup hash: %v", err)
	}
	return hash
}

func TestArgon2Hash(t *testing.T) {
	t.Run("format validation", func(t *testing.T) {
		hash := setupPasswordHash(t, lightArgon2(t), "testPassword123")

		tests := []struct {
			name  string
			check func(string) bool
			desc  string
		}{
			{
				name:  "has argon2id algorithm",
				check: func(h string) bool { return strings.HasPrefix(h, "$argon2id$") },
				desc:  "should start with $argon2id$",
			},
			{
				name:  "has correct version",
				check: func(h string) bool { return strings.Contains(h, "$v=19$") },
				desc:  "should contain version 19",
			},
			{
				name:  "has 6 parts",
				check: func(h string) bool { return len(strings.Split(h, "$")) == 6 },
				desc:  "should have 6 parts",
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				if !test.check(hash) {
					t.Errorf("%s: %s", test.desc, hash)
				}
			})
		}
	})

	t.Run("generates unique salts", func(t *testing.T) {
		a := lightArgon2(t)
		password := "samePassword"

		hash1, _ := a.Hash(password)
		hash2, _ := a.Hash(password)

		if hash1 == hash2 {
			t.Error("Same password should generate different hashes (unique salts)")
		}
	})

	t.Run("handles edge cases", func(t *testing.T) {
		a := lightArgon2(t)

		tests := []struct {
			name     string
			password string
		}{
			{"empty password", ""},
			{"long password", strings.Repeat("a", 128)},
			{"unicode", "パスワード🔐"},
			{"special chars", "p@ssw0rd!#$%"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := a.Hash(test.password)
				if err != nil {
					t.Errorf("Hash() should handle %s, got error: %v", test.name, err)
				}
			})
		}
	})
}

// Requirement: Verify(p, Hash(p)) is true; Verify(p, Hash(q)) is false for p != q.
func TestArgon2Verify(t *testing.T) {
	a := lightArgon2(t)
	hash := setupPasswordHash(t, a, "correctPassword")

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "correctPassword", true},
		{"wrong password", "wrongPassword", false},
		{"empty password", "", false},
		{"case sensitive", "Correctpassword", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := a.Verify(test.password, hash)
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if got != test.want {
				t.Errorf("Verify(%q) = %v, want %v", test.password, got, test.want)
			}
		})
	}
}

// Requirement: unreadable stored hashes fail with ErrMalformedHash, never a silent false.
func TestArgon2Verify_MalformedHash(t *testing.T) {
	a := lightArgon2(t)

	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"not a hash", "plaintext-left-in-column"},
		{"wrong part count", "$argon2id$v=19$m=8192"},
		{"unsupported algorithm", "$scrypt$v=19$m=8192,t=1,p=1$c2FsdA$aGFzaA"},
		{"bad salt encoding", "$argon2id$v=19$m=8192,t=1,p=1$!!!$aGFzaA"},
		{"bad params", "$argon2id$v=19$m=abc,t=1,p=1$c2FsdA$aGFzaA"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := a.Verify("password", test.hash)
			if !errors.Is(err, ErrMalformedHash) {
				t.Errorf("Verify() error = %v, want ErrMalformedHash", err)
			}
		})
	}
}

// Requirement: the bcrypt handler satisfies the same contract as argon2.
func TestBcrypt(t *testing.T) {
	b := &Bcrypt{Cost: 4} // min cost, tests only

	t.Run("round trip", func(t *testing.T) {
		hash := setupPasswordHash(t, b, "SecurePass123!")

		ok, err := b.Verify("SecurePass123!", hash)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if !ok {
			t.Error("Verify() should accept the original password")
		}

		ok, err = b.Verify("not-the-password", hash)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if ok {
			t.Error("Verify() should reject a wrong password")
		}
	})

	t.Run("generates unique salts", func(t *testing.T) {
		hash1 := setupPasswordHash(t, b, "samePassword")
		hash2 := setupPasswordHash(t, b, "samePassword")
		if hash1 == hash2 {
			t.Error("Same password should generate different hashes (unique salts)")
		}
	})

	t.Run("malformed hash", func(t *testing.T) {
		_, err := b.Verify("password", "not-a-bcrypt-hash")
		if !errors.Is(err, ErrMalformedHash) {
			t.Errorf("Verify() error = %v, want ErrMalformedHash", err)
		}
	})
}
