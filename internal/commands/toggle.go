package commands

import (
	"fmt"
	"strings"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "commands",
		Aliases:     []string{"cmd"},
		Description: "Enable or disable commands for this server",
		Category:    "Settings",
		Subcommands: []*command.Command{
			{
				Name:        "list",
				Description: "List disabled commands",
				Run:         toggleListHandler,
			},
			{
				Name:        "disable",
				Description: "Disable a command here",
				StrictArgs:  true,
				Params:      []bind.Param{{Name: "name", Type: nil}},
				Run:         toggleSetHandler(true),
			},
			{
				Name:        "enable",
				Description: "Re-enable a command here",
				StrictArgs:  true,
				Params:      []bind.Param{{Name: "name", Type: nil}},
				Run:         toggleSetHandler(false),
			},
		},
	}, command.WithGuildOnly(), command.WithCommandLog())
}

func toggleListHandler(ctx *command.Context, _ *bind.Bound) error {
	disabled, err := ctx.Storage.DisabledCommands(ctx.Message.GuildID)
	if err != nil {
		return fmt.Errorf("failed to read toggles: %w", err)
	}
	if len(disabled) == 0 {
		return ctx.Reply("No commands are disabled here.")
	}
	return ctx.Replyf("Disabled: `%s`", strings.Join(disabled, "`, `"))
}

func toggleSetHandler(disable bool) command.HandlerFunc {
	return func(ctx *command.Context, args *bind.Bound) error {
		name := strings.ToLower(args.Get(0).(string))
		target, ok := command.Get(name)
		if !ok {
			return &bind.BindError{Message: fmt.Sprintf("No such command: %q.", name)}
		}
		if target.Name == "commands" {
			return &bind.BindError{Message: "This command cannot be toggled."}
		}
		if err := ctx.Storage.SetCommandDisabled(ctx.Message.GuildID, target.Name, disable); err != nil {
			return fmt.Errorf("failed to store toggle: %w", err)
		}
		if disable {
			return ctx.Replyf("Disabled `%s` for this server.", target.Name)
		}
		return ctx.Replyf("Enabled `%s` for this server.", target.Name)
	}
}
