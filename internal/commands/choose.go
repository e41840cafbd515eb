package commands

import (
	"math/rand"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "choose",
		Aliases:     []string{"pick"},
		Description: "Pick one option at random; quote options with spaces",
		Category:    "Fun",
		Params: []bind.Param{
			{Name: "options", Type: bind.VariadicOf(nil)},
		},
		Run: chooseHandler,
	})
}

func chooseHandler(ctx *command.Context, args *bind.Bound) error {
	options := args.Get(0).([]any)
	pick := options[rand.Intn(len(options))].(string)
	return ctx.Replyf("🎯 I choose: **%s**", pick)
}
