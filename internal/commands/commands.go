package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"
	"sync"
)

const prefix = "cmd "

var (
	// ErrMissing is returned by Execute when no subcommand is given.
	ErrMissing = errors.New("missing subcommand")
	// ErrUnknown is returned by Execute for names that were never registered.
	ErrUnknown = errors.New("unknown command")
)

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
// Execute is serialized because a command's flag state lives in its FlagSet.
type Registry struct {
	mu   sync.Mutex
	run  sync.Mutex
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// Register adds a subcommand. name is the first token of a command line (e.g. "torus").
// fs is that command's FlagSet; run is called after fs.Parse(args[1:]) succeeds.
// fs is switched to ContinueOnError so a bad flag never exits the process.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	fs.Init(name, flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.cmds))
	for name := range r.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Help returns one line per command: name, usage and its flags.
func (r *Registry) Help() []string {
	var lines []string
	for _, name := range r.Names() {
		r.mu.Lock()
		cmd := r.cmds[name]
		r.mu.Unlock()
		var flags []string
		cmd.FlagSet.VisitAll(func(f *flag.Flag) {
			flags = append(flags, fmt.Sprintf("-%s=%s", f.Name, f.DefValue))
		})
		line := name
		if cmd.Usage != "" {
			line += ": " + cmd.Usage
		}
		if len(flags) > 0 {
			line += " [" + strings.Join(flags, " ") + "]"
		}
		lines = append(lines, line)
	}
	return lines
}

// Parse tokenizes a terminal line. A leading "cmd " is accepted and dropped.
// Blank lines and lines starting with '#' yield ok false.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimSpace(line)
	if rest, found := strings.CutPrefix(line, prefix); found {
		line = strings.TrimSpace(rest)
	} else if line == strings.TrimSpace(prefix) {
		line = ""
	}
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false
	}
	return strings.Fields(line), true
}

// Execute runs the subcommand in args[0] with args[1:] as flag/positional arguments.
// Flags are reset to their defaults first so earlier runs do not leak into this one.
// Returns an error for unknown command, parse error, or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissing
	}
	name := args[0]
	r.mu.Lock()
	cmd, ok := r.cmds[name]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknown, name)
	}
	r.run.Lock()
	defer r.run.Unlock()
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}
