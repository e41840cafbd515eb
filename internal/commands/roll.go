package commands

import (
	"fmt"
	"math/rand"
	"strings"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "roll",
		Description: "Roll dice: each number is a die's side count, e.g. `roll 6 6 20 for initiative`",
		Category:    "Fun",
		Params: []bind.Param{
			{Name: "dice", Type: bind.GreedyOf(bind.TypeOf[int]())},
			{Name: "label", Type: bind.RestOf(nil), Default: "", Optional: true},
		},
		Run: rollHandler,
	}, command.WithCommandLog())
}

func rollHandler(ctx *command.Context, args *bind.Bound) error {
	dice := args.Get(0).([]any)

	var rolls []string
	total := 0
	for _, d := range dice {
		sides := d.(int)
		if sides < 2 {
			return &bind.BindError{Message: "Dice need at least 2 sides."}
		}
		n := rand.Intn(sides) + 1
		total += n
		rolls = append(rolls, fmt.Sprintf("d%d→%d", sides, n))
	}

	out := fmt.Sprintf("🎲 %s = **%d**", strings.Join(rolls, " + "), total)
	if label, ok := args.Rest("label"); ok && label.(string) != "" {
		out += fmt.Sprintf(" (%s)", label)
	}
	return ctx.Reply(out)
}
