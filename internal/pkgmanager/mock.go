package pkgmanager

import (
	"context"
	"fmt"
	"strings"
)

// MockRunner records commands instead of spawning them
type MockRunner struct {
	available map[string]bool
	failures  map[string]error
	probes    []string
	commands  []Command
}

// NewMockRunner creates a MockRunner where every probe fails and every command succeeds
func NewMockRunner() *MockRunner {
	return &MockRunner{
		available: make(map[string]bool),
		failures:  make(map[string]error),
	}
}

// SetAvailable controls whether probes of the named tool succeed
func (m *MockRunner) SetAvailable(name string, available bool) {
	m.available[name] = available
}

// SetFailure makes Run fail with err for commands of the named tool
func (m *MockRunner) SetFailure(name string, err error) {
	m.failures[name] = err
}

func (m *MockRunner) Probe(ctx context.Context, name string, args ...string) error {
	m.probes = append(m.probes, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if !m.available[name] {
		return fmt.Errorf("%s: executable file not found in $PATH", name)
	}
	return nil
}

func (m *MockRunner) Run(ctx context.Context, cmd Command) error {
	m.commands = append(m.commands, cmd)
	return m.failures[cmd.Name]
}

// Probes returns the probe command lines in invocation order
func (m *MockRunner) Probes() []string {
	return m.probes
}

// Commands returns the executed commands in invocation order
func (m *MockRunner) Commands() []Command {
	return m.commands
}
