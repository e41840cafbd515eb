package commands

import (
	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "say",
		Aliases:     []string{"echo"},
		Description: "Repeat whatever follows the command",
		Category:    "Fun",
		Params: []bind.Param{
			{Name: "text", Type: bind.RestOf(nil)},
		},
		Run: sayHandler,
	}, command.WithCommandLog())
}

func sayHandler(ctx *command.Context, args *bind.Bound) error {
	text, _ := args.Rest("text")
	return ctx.Reply(text.(string))
}
