package commands

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-molt/internal/command"
	"server-molt/internal/discord"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "slowmode",
		Description: "Set slowmode seconds on a channel (current channel when omitted)",
		Category:    "Moderation",
		Params: []bind.Param{
			{Name: "channel", Type: bind.OneOf(discord.ChannelType, bind.None)},
			{Name: "seconds", Type: bind.Literals(0, 5, 10, 30, 60)},
		},
		Run: slowmodeHandler,
	}, command.WithGuildOnly(), command.WithCommandLog())
}

func slowmodeHandler(ctx *command.Context, args *bind.Bound) error {
	channelID := ctx.Message.ChannelID
	if v := args.Get(0); v != nil {
		channelID = v.(*discordgo.Channel).ID
	}
	seconds := args.Get(1).(int)

	_, err := ctx.Session.ChannelEditComplex(channelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	})
	if err != nil {
		return fmt.Errorf("failed to edit channel: %w", err)
	}
	if seconds == 0 {
		return ctx.Reply("Slowmode disabled.")
	}
	return ctx.Replyf("Slowmode set to %d seconds.", seconds)
}
