package auth

import "testing"

func TestPasswordHashingLifecycle(t *testing.T) {
	password := "S3curePass!"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	if !VerifyPassword(hash, password) {
		t.Fatal("expected password to verify")
	}

	if VerifyPassword(hash, "wrong") {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashPasswordRejectsEmptyInput(t *testing.T) {
	if _, err := HashPassword("   "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestVerifyPasswordToleratesBadStoredHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "空哈希", hash: ""},
		{name: "空白哈希", hash: "   "},
		{name: "非 bcrypt 内容", hash: "not-a-bcrypt-hash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword(tt.hash, "whatever") {
				t.Fatal("expected mismatch for malformed stored hash")
			}
		})
	}
}

func TestHashPasswordSaltsPerCall(t *testing.T) {
	first, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	second, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct hashes for repeated input")
	}
}
