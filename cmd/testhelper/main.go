// Command testhelper is a thin stdin/stdout harness around the emojilock
// library, used by the cross-implementation interop test suite: another
// implementation encrypts, this one decrypts, and vice versa.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	emojilock "github.com/emojilock/emojilock-go"
)

// Config wires the helper's I/O so tests can capture it.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// EncryptInput is the JSON request for the encrypt command.
type EncryptInput struct {
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`
	GroupSize *int   `json:"groupSize,omitempty"`
}

// DecryptInput is the JSON request for the decrypt command.
type DecryptInput struct {
	Emoji    string `json:"emoji"`
	Password string `json:"password"`
}

// Output is the JSON response for both commands.
type Output struct {
	Emoji     string `json:"emoji,omitempty"`
	Plaintext string `json:"plaintext,omitempty"`
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <encrypt|decrypt>")
	}

	ctx := context.Background()

	switch args[1] {
	case "encrypt":
		return encrypt(ctx, cfg)
	case "decrypt":
		return decrypt(ctx, cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func encrypt(ctx context.Context, cfg Config) error {
	var input EncryptInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	var opts []emojilock.Option
	if input.GroupSize != nil {
		opts = append(opts, emojilock.WithGroupSize(*input.GroupSize))
	}

	sealed, err := emojilock.Encrypt(ctx, input.Plaintext, input.Password, opts...)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(Output{Emoji: sealed})
}

func decrypt(ctx context.Context, cfg Config) error {
	var input DecryptInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&input); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	plaintext, err := emojilock.Decrypt(ctx, input.Emoji, input.Password)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(Output{Plaintext: plaintext})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
