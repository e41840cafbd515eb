package commands

import (
	"fmt"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "prefix",
		Description: "Change the command prefix for this server",
		Category:    "Settings",
		StrictArgs:  true,
		Params: []bind.Param{
			{Name: "prefix", Type: nil},
		},
		Run: prefixHandler,
	}, command.WithGuildOnly(), command.WithCommandLog())
}

func prefixHandler(ctx *command.Context, args *bind.Bound) error {
	prefix := args.Get(0).(string)
	if len(prefix) > 5 {
		return &bind.BindError{Message: "Prefixes longer than 5 characters are not allowed."}
	}
	if err := ctx.Storage.SetPrefix(ctx.Message.GuildID, prefix); err != nil {
		return fmt.Errorf("failed to store prefix: %w", err)
	}
	return ctx.Replyf("Prefix changed to `%s`", prefix)
}
