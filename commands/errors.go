package commands

import "errors"

var (
	// ErrEmptyText reports blank input to Parse. Blank text means the caller
	// skipped its own filtering, not that the message carried no command.
	ErrEmptyText = errors.New("message text is empty")

	// ErrNilCommand reports an attempt to register a nil Command.
	ErrNilCommand = errors.New("command is nil")

	// ErrCommandName reports a command name or alias that is not a plain
	// word of letters, digits and underscores.
	ErrCommandName = errors.New("invalid command name")

	// ErrNilHandler reports a FuncCommand built without a handler.
	ErrNilHandler = errors.New("command handler is nil")

	// ErrNoMessage reports an update that carries no message to reply to.
	ErrNoMessage = errors.New("update has no message")
)
