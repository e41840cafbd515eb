// Package command holds the prefix-command registry: command metadata,
// subcommand trees, middleware, and the glue between dispatch and the
// argument binder in pkg/bind.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-molt/internal/storage"
	"server-molt/pkg/bind"
)

// Context is handed to command handlers, and travels as the opaque data
// payload into argument converters.
type Context struct {
	Ctx     context.Context
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	Storage *storage.Storage
	Command *Command
	Prefix  string
}

// Reply sends text to the invoking channel.
func (c *Context) Reply(text string) error {
	_, err := c.Session.ChannelMessageSend(c.Message.ChannelID, text)
	return err
}

// Replyf sends formatted text to the invoking channel.
func (c *Context) Replyf(format string, a ...any) error {
	return c.Reply(fmt.Sprintf(format, a...))
}

// HandlerFunc runs a bound command invocation.
type HandlerFunc func(ctx *Context, args *bind.Bound) error

type Command struct {
	Name        string
	Aliases     []string
	Description string
	Help        string
	Category    string
	Hidden      bool
	// StrictArgs rejects leftover tokens instead of silently discarding
	// them ("too many arguments").
	StrictArgs  bool
	Params      []bind.Param
	Run         HandlerFunc
	Subcommands []*Command

	parent    *Command
	signature *bind.Signature
	subIndex  map[string]*Command
}

// QualifiedName is the full invocation path, e.g. "commands disable".
func (c *Command) QualifiedName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.QualifiedName() + " " + c.Name
}

// Root walks up to the top-level command of a subcommand tree.
func (c *Command) Root() *Command {
	r := c
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Signature returns the parameter descriptors built at registration.
func (c *Command) Signature() *bind.Signature { return c.signature }

// Lookup resolves a direct subcommand by name or alias.
func (c *Command) Lookup(name string) (*Command, bool) {
	sub, ok := c.subIndex[strings.ToLower(name)]
	return sub, ok
}

// Invoke binds already-tokenized arguments and runs the handler. Binding
// failures come back as *bind.BindError for the dispatcher to show the user.
func (c *Command) Invoke(ctx *Context, tokens []string) error {
	args, err := c.signature.BindTokens(ctx.Ctx, ctx, tokens, !c.StrictArgs)
	if err != nil {
		return err
	}
	if c.Run == nil {
		return &bind.BindError{Message: fmt.Sprintf("%s needs a subcommand.", c.QualifiedName())}
	}
	return c.Run(ctx, args)
}

// build compiles the command's signature and subcommand index, recursively.
// Any problem is a developer error reported at registration time.
func (c *Command) build() error {
	sig, err := bind.New(c.QualifiedName(), c.Params...)
	if err != nil {
		return err
	}
	c.signature = sig

	if c.Run == nil && len(c.Subcommands) == 0 {
		return fmt.Errorf("command %q has neither a handler nor subcommands", c.QualifiedName())
	}

	c.subIndex = map[string]*Command{}
	for _, sub := range c.Subcommands {
		sub.parent = c
		for _, key := range append([]string{sub.Name}, sub.Aliases...) {
			key = strings.ToLower(key)
			if _, dup := c.subIndex[key]; dup {
				return fmt.Errorf("duplicate command: multiple subcommands of %q share the name/alias %q",
					c.QualifiedName(), key)
			}
			c.subIndex[key] = sub
		}
		if err := sub.build(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) applyMiddleware(mws ...Middleware) {
	if c.Run != nil {
		c.Run = Apply(c.Run, mws...)
	}
	// parents vouch for their subcommands too
	for _, sub := range c.Subcommands {
		sub.applyMiddleware(mws...)
	}
}
