package commands

import (
	"time"

	"server-molt/internal/command"
	"server-molt/internal/reminder"
	"server-molt/pkg/bind"
	"server-molt/pkg/util"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "remind",
		Aliases:     []string{"remindme"},
		Description: "Get pinged after a delay, e.g. `remind 1h30m stretch your legs`",
		Category:    "Utility",
		Params: []bind.Param{
			{Name: "in", Type: bind.TypeOf[time.Duration]()},
			{Name: "text", Type: bind.RestOf(nil), Default: "Time's up!", Optional: true},
		},
		Run: remindHandler,
	}, command.WithCommandLog())
}

func remindHandler(ctx *command.Context, args *bind.Bound) error {
	in := args.Get(0).(time.Duration)
	text, _ := args.Rest("text")

	if in < time.Second || in > 30*24*time.Hour {
		return &bind.BindError{Message: "Delay must be between 1 second and 30 days."}
	}

	reminder.DefaultManager.Schedule(
		ctx.Message.GuildID,
		ctx.Message.ChannelID,
		ctx.Message.Author.ID,
		text.(string),
		in,
	)
	return ctx.Replyf("⏰ Got it, I'll ping you in %s.", util.HumanDuration(in))
}
