package commands

import (
	"github.com/rs/zerolog/log"
)

// Registry is the mutable name to Command store behind a Bus. A command is
// stored under its name and once more under each alias, so every key resolves
// independently.
//
// The registry is not synchronized. Register everything once at startup,
// before updates flow; mutating it under live traffic needs an external lock.
type Registry struct {
	commands map[string]Command
	names    []string
}

// Register stores cmd under its name and each of its aliases. Existing
// entries under the same keys are overwritten, keeping their original
// position in Names.
func (r *Registry) Register(cmd Command) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	r.insert(cmd)
	return nil
}

// RegisterAll registers every command in order. All commands are validated
// up front; one bad entry fails the whole batch and nothing is stored.
func (r *Registry) RegisterAll(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := validateCommand(cmd); err != nil {
			return err
		}
	}
	for _, cmd := range cmds {
		r.insert(cmd)
	}
	return nil
}

// Remove deletes the entry stored under name. Removing an absent name is a
// no-op. Removing an alias leaves the command reachable under its other keys.
func (r *Registry) Remove(name string) {
	if _, ok := r.commands[name]; !ok {
		return
	}

	delete(r.commands, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}

	log.Info().Str("command", name).Msg("removed command handler")
}

// RemoveAll removes every given name, each with Remove semantics.
func (r *Registry) RemoveAll(names ...string) {
	for _, name := range names {
		r.Remove(name)
	}
}

// Get returns the command stored under name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Snapshot returns a copy of the current key to Command mapping. Mutating
// the returned map does not affect the registry.
func (r *Registry) Snapshot() map[string]Command {
	snapshot := make(map[string]Command, len(r.commands))
	for name, cmd := range r.commands {
		snapshot[name] = cmd
	}
	return snapshot
}

// Names returns every registered key, names and aliases alike, in the order
// they were first registered.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len reports the number of registered keys.
func (r *Registry) Len() int {
	return len(r.commands)
}

func (r *Registry) insert(cmd Command) {
	if r.commands == nil {
		r.commands = make(map[string]Command)
	}

	r.set(cmd.Name(), cmd)
	for _, alias := range cmd.Aliases() {
		r.set(alias, cmd)
	}

	log.Info().Str("command", cmd.Name()).Strs("aliases", cmd.Aliases()).Msg("registered command handler")
}

func (r *Registry) set(name string, cmd Command) {
	if _, ok := r.commands[name]; !ok {
		r.names = append(r.names, name)
	}
	r.commands[name] = cmd
}

func validateCommand(cmd Command) error {
	if cmd == nil {
		return ErrNilCommand
	}
	if err := validateName(cmd.Name()); err != nil {
		return err
	}
	for _, alias := range cmd.Aliases() {
		if err := validateName(alias); err != nil {
			return err
		}
	}
	return nil
}
