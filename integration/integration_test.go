//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	emojilock "github.com/emojilock/emojilock-go"
	"github.com/joho/godotenv"
)

func TestMain(m *testing.M) {
	// Load .env file if it exists (won't error if missing)
	if err := godotenv.Load("../.env"); err != nil {
		os.Stderr.WriteString("Note: .env file not found at project root\n")
	}

	os.Exit(m.Run())
}

// TestFullCostRoundTrip runs the complete pipeline at the production
// iteration count. The unit suite lowers the KDF cost; this test does not,
// so it takes a couple of seconds per call.
func TestFullCostRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	sealed, err := emojilock.Encrypt(ctx, "Hello World!", "correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	t.Logf("encrypt at full KDF cost took %v", time.Since(start))

	plaintext, err := emojilock.Decrypt(ctx, sealed, "correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Decrypt() error = %v", err)
	}
	if plaintext != "Hello World!" {
		t.Errorf("round trip = %q, want %q", plaintext, "Hello World!")
	}
}

// TestCrossImplementationVectors decrypts packages produced by another
// implementation of the format. The vector file path comes from
// EMOJILOCK_TEST_VECTORS (typically set in .env); each line is a JSON record
// {"emoji": "...", "password": "...", "plaintext": "..."}.
func TestCrossImplementationVectors(t *testing.T) {
	path := os.Getenv("EMOJILOCK_TEST_VECTORS")
	if path == "" {
		t.Skip("EMOJILOCK_TEST_VECTORS not set")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read vectors: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	for i, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var vector struct {
			Emoji     string `json:"emoji"`
			Password  string `json:"password"`
			Plaintext string `json:"plaintext"`
		}
		if err := json.Unmarshal([]byte(line), &vector); err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}

		plaintext, err := emojilock.Decrypt(ctx, vector.Emoji, vector.Password)
		if err != nil {
			t.Errorf("vector %d: Decrypt() error = %v", i, err)
			continue
		}
		if plaintext != vector.Plaintext {
			t.Errorf("vector %d: plaintext = %q, want %q", i, plaintext, vector.Plaintext)
		}
	}
}

// TestHelperBinary exercises the cmd/testhelper harness end to end.
func TestHelperBinary(t *testing.T) {
	bin := t.TempDir() + "/testhelper"

	build := exec.Command("go", "build", "-o", bin, "../cmd/testhelper")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("build testhelper: %v\n%s", err, out)
	}

	enc := exec.Command(bin, "encrypt")
	enc.Stdin = strings.NewReader(`{"plaintext":"via helper","password":"pw"}`)
	encOut, err := enc.Output()
	if err != nil {
		t.Fatalf("testhelper encrypt: %v", err)
	}

	var encrypted struct {
		Emoji string `json:"emoji"`
	}
	if err := json.Unmarshal(encOut, &encrypted); err != nil {
		t.Fatal(err)
	}

	request, _ := json.Marshal(map[string]string{"emoji": encrypted.Emoji, "password": "pw"})
	dec := exec.Command(bin, "decrypt")
	dec.Stdin = strings.NewReader(string(request))
	decOut, err := dec.Output()
	if err != nil {
		t.Fatalf("testhelper decrypt: %v", err)
	}

	var decrypted struct {
		Plaintext string `json:"plaintext"`
	}
	if err := json.Unmarshal(decOut, &decrypted); err != nil {
		t.Fatal(err)
	}
	if decrypted.Plaintext != "via helper" {
		t.Errorf("plaintext = %q, want %q", decrypted.Plaintext, "via helper")
	}
}
