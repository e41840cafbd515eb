package command

import (
	"fmt"
	"sort"
	"strings"
)

var registry = map[string]*Command{}

// Register builds the command's signatures and adds it, plus its aliases, to
// the global registry. Malformed parameter declarations surface here, at
// registration, never at dispatch.
func Register(cmd *Command, mws ...Middleware) error {
	if err := cmd.build(); err != nil {
		return err
	}
	cmd.applyMiddleware(mws...)

	for _, key := range append([]string{cmd.Name}, cmd.Aliases...) {
		key = strings.ToLower(key)
		if _, dup := registry[key]; dup {
			return fmt.Errorf("duplicate command: multiple commands share the name/alias %q", key)
		}
		registry[key] = cmd
	}
	return nil
}

// MustRegister is Register for init() use; registration failures are
// programmer errors, so it panics.
func MustRegister(cmd *Command, mws ...Middleware) {
	if err := Register(cmd, mws...); err != nil {
		panic(err)
	}
}

// Get returns the command registered under name or one of its aliases.
func Get(name string) (*Command, bool) {
	cmd, ok := registry[strings.ToLower(name)]
	return cmd, ok
}

// Resolve walks fields down the command and subcommand tree, returning the
// deepest match and the remaining argument tokens.
func Resolve(fields []string) (*Command, []string, bool) {
	if len(fields) == 0 {
		return nil, nil, false
	}
	cmd, ok := registry[strings.ToLower(fields[0])]
	if !ok {
		return nil, nil, false
	}

	rest := fields[1:]
	for len(rest) > 0 {
		sub, ok := cmd.Lookup(rest[0])
		if !ok {
			break
		}
		cmd = sub
		rest = rest[1:]
	}
	return cmd, rest, true
}

// All returns every registered command once, sorted by name.
func All() []*Command {
	seen := map[string]bool{}
	list := make([]*Command, 0, len(registry))
	for _, cmd := range registry {
		if seen[cmd.Name] {
			continue
		}
		seen[cmd.Name] = true
		list = append(list, cmd)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
