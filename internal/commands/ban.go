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
		Name:        "ban",
		Description: "Ban a member, with an optional reason",
		Category:    "Moderation",
		Params: []bind.Param{
			{Name: "target", Type: discord.MemberType},
			{Name: "reason", Type: bind.RestOf(nil), Default: "No reason given.", Optional: true},
		},
		Run: banHandler,
	}, command.WithGuildOnly(), command.WithCommandLog())
}

func banHandler(ctx *command.Context, args *bind.Bound) error {
	target := args.Get(0).(*discordgo.Member)
	reason, _ := args.Rest("reason")

	err := ctx.Session.GuildBanCreateWithReason(ctx.Message.GuildID, target.User.ID, reason.(string), 0)
	if err != nil {
		return fmt.Errorf("ban failed: %w", err)
	}
	return ctx.Replyf("🔨 Banned **%s**: %s", target.User.Username, reason)
}
