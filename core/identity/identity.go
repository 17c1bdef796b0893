package identity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrGeneration is returned (wrapped) when a generator cannot produce an identifier.
var ErrGeneration = errors.New("identifier generation failed")

const (
	// KindUUID selects the in-process UUID generator.
	KindUUID = "uuid"
	// KindUUIDGen selects the external uuidgen command.
	KindUUIDGen = "uuidgen"
)

// Generator produces a new unique identifier on every call.
type Generator interface {
	NewID() (string, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func() (string, error)

// NewID calls f.
func (f GeneratorFunc) NewID() (string, error) {
	return f()
}

// UUIDGenerator generates upper-case random UUIDs, matching the format uuidgen
// prints on macOS.
type UUIDGenerator struct{}

// NewID returns a fresh v4 UUID.
func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return strings.ToUpper(id.String()), nil
}

// CommandGenerator runs an external command and returns its trimmed output.
type CommandGenerator struct {
	// Name is the executable to run. Defaults to "uuidgen".
	Name string
	// Args are passed to the executable.
	Args []string
	// Timeout bounds a single invocation. Defaults to 5 seconds.
	Timeout time.Duration
}

// NewID runs the command once.
func (g CommandGenerator) NewID() (string, error) {
	name := g.Name
	if name == "" {
		name = "uuidgen"
	}
	timeout := g.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, g.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%w: %s: %v: %s", ErrGeneration, name, err, msg)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrGeneration, name, err)
	}

	id := strings.TrimSpace(stdout.String())
	if id == "" {
		return "", fmt.Errorf("%w: %s produced no output", ErrGeneration, name)
	}
	return id, nil
}

// New returns the generator for the configured kind.
func New(kind string) (Generator, error) {
	switch strings.ToLower(kind) {
	case "", KindUUID:
		return UUIDGenerator{}, nil
	case KindUUIDGen:
		return CommandGenerator{}, nil
	default:
		return nil, fmt.Errorf("unknown identifier generator %q (want %s or %s)", kind, KindUUID, KindUUIDGen)
	}
}
