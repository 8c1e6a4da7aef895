package tgdango

import (
	"fmt"
	"strings"

	"github.com/n0h4rt/tgdango/utils"
)

// Handler is an interface that defines the methods for handling updates.
type Handler interface {
	Check(*Context) bool
	Invoke(*Context) error
}

// Callback is a function type that represents a callback function for handling updates.
type Callback func(*Context) error

// CommandHandler is a struct that implements the Handler interface for handling commands in messages.
type CommandHandler struct {
	Callback Callback
	Filter   Filter
	Commands []string
	app      *Application
}

// Check checks if the message starts with the prefix and one of the commands.
// A command addressed to another bot ("/cmd@otherbot") does not match.
func (ch *CommandHandler) Check(c *Context) bool {
	command, rest, ok := ch.app.parseCommand(c)
	if !ok || !utils.Contains(ch.Commands, command) {
		return false
	}

	ok = true
	if ch.Filter != nil {
		ok = ch.Filter.Check(c)
	}

	if ok {
		c.Command = command
		c.Argument = rest
		c.Arguments = strings.Fields(rest)
		c.WithArgument = len(c.Arguments) > 0
	}
	return ok
}

// Invoke executes the callback function for the command.
func (ch *CommandHandler) Invoke(c *Context) error {
	return ch.Callback(c)
}

// NewCommandHandler returns a new `CommandHandler`.
func NewCommandHandler(callback Callback, filter Filter, commands ...string) Handler {
	return &CommandHandler{
		Callback: callback,
		Filter:   filter,
		Commands: commands,
	}
}

// MessageHandler is a struct that implements the Handler interface for handling new messages.
type MessageHandler struct {
	Callback Callback
	Filter   Filter
}

// Check checks if the update is a new message sent by someone else than the bot.
func (mh *MessageHandler) Check(c *Context) bool {
	if c.UpdateType != OnMessage {
		return false
	}
	if c.From != nil && c.From.IsBot {
		return false
	}
	ok := true
	if mh.Filter != nil {
		ok = mh.Filter.Check(c)
	}
	return ok
}

// Invoke executes the callback function for the message.
func (mh *MessageHandler) Invoke(c *Context) error {
	return mh.Callback(c)
}

// NewMessageHandler returns a new `MessageHandler`.
func NewMessageHandler(callback Callback, filter Filter) Handler {
	return &MessageHandler{
		Callback: callback,
		Filter:   filter,
	}
}

// TypeHandler is a struct that implements the Handler interface for handling updates of specific types.
type TypeHandler struct {
	Callback Callback
	Filter   Filter
	Type     UpdateType
}

// Check checks if the update is of one of the specified types.
func (th *TypeHandler) Check(c *Context) bool {
	if th.Type&c.UpdateType == 0 {
		return false
	}
	ok := true
	if th.Filter != nil {
		ok = th.Filter.Check(c)
	}
	return ok
}

// Invoke executes the callback function for the update.
func (th *TypeHandler) Invoke(c *Context) error {
	return th.Callback(c)
}

// NewTypeHandler returns a new `TypeHandler`.
// The update types can be combined, e.g. `OnMessage|OnEditedMessage`.
func NewTypeHandler(callback Callback, filter Filter, updateType UpdateType) Handler {
	return &TypeHandler{
		Callback: callback,
		Filter:   filter,
		Type:     updateType,
	}
}

// UnknownCommandHandler answers commands that no [CommandHandler] of the application knows,
// suggesting the closest known one when there is one.
type UnknownCommandHandler struct {
	Filter Filter
	app    *Application
}

// Check checks if the message is a command that is not registered.
func (uh *UnknownCommandHandler) Check(c *Context) bool {
	command, _, ok := uh.app.parseCommand(c)
	if !ok || command == "" || uh.app.hasCommand(command) {
		return false
	}
	c.Command = command

	ok = true
	if uh.Filter != nil {
		ok = uh.Filter.Check(c)
	}
	return ok
}

// Invoke replies with the suggestion.
func (uh *UnknownCommandHandler) Invoke(c *Context) error {
	prefix := uh.app.Config.Prefix
	text := fmt.Sprintf("Unknown command %s%s.", prefix, c.Command)
	if suggestion, ok := uh.app.SuggestCommand(c.Command); ok {
		text = fmt.Sprintf("Unknown command %s%s. Did you mean %s%s?", prefix, c.Command, prefix, suggestion)
	}

	_, err := c.Reply(text)
	return err
}

// NewUnknownCommandHandler returns a new `UnknownCommandHandler`.
func NewUnknownCommandHandler(filter Filter) Handler {
	return &UnknownCommandHandler{Filter: filter}
}

// ErrorHandler is a struct that implements the Handler interface for handling failed updates.
type ErrorHandler struct {
	Callback Callback
	Filter   Filter
}

// Check checks if the context carries an error.
func (eh *ErrorHandler) Check(c *Context) bool {
	if c.Error == nil {
		return false
	}
	ok := true
	if eh.Filter != nil {
		ok = eh.Filter.Check(c)
	}
	return ok
}

// Invoke executes the callback function for the error.
func (eh *ErrorHandler) Invoke(c *Context) error {
	return eh.Callback(c)
}

// NewErrorHandler returns a new `ErrorHandler`, to be added with [Application.AddErrorHandler].
func NewErrorHandler(callback Callback, filter Filter) Handler {
	return &ErrorHandler{
		Callback: callback,
		Filter:   filter,
	}
}
