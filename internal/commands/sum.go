package commands

import (
	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "sum",
		Description: "Add up a list of numbers",
		Category:    "Fun",
		Params: []bind.Param{
			{Name: "numbers", Type: bind.VariadicOf(bind.TypeOf[int]())},
		},
		Run: sumHandler,
	})
}

func sumHandler(ctx *command.Context, args *bind.Bound) error {
	total := 0
	for _, v := range args.Get(0).([]any) {
		total += v.(int)
	}
	return ctx.Replyf("Total: **%d**", total)
}
