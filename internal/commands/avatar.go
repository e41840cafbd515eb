package commands

import (
	"github.com/bwmarrin/discordgo"

	"server-molt/internal/command"
	"server-molt/internal/discord"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "avatar",
		Aliases:     []string{"av"},
		Description: "Show a user's avatar (yours when no user is given)",
		Category:    "Information",
		Params: []bind.Param{
			{Name: "user", Type: bind.OneOf(discord.UserType, bind.None)},
		},
		Run: avatarHandler,
	}, command.WithCommandLog())
}

func avatarHandler(ctx *command.Context, args *bind.Bound) error {
	user := ctx.Message.Author
	if v := args.Get(0); v != nil {
		user = v.(*discordgo.User)
	}
	return ctx.Replyf("%s's avatar: %s", user.Username, user.AvatarURL("256"))
}
