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
		Name:        "inspect",
		Aliases:     []string{"whois"},
		Description: "Identify a member, channel, role, or raw ID",
		Category:    "Information",
		Params: []bind.Param{
			{Name: "target", Type: bind.OneOf(
				discord.MemberType,
				discord.ChannelType,
				discord.RoleType,
				discord.EmojiType,
				discord.SnowflakeType,
			)},
		},
		Run: inspectHandler,
	}, command.WithGuildOnly(), command.WithCommandLog())
}

func inspectHandler(ctx *command.Context, args *bind.Bound) error {
	switch v := args.Get(0).(type) {
	case *discordgo.Member:
		name := v.Nick
		if name == "" {
			name = v.User.Username
		}
		return ctx.Replyf("Member **%s** (`%s`), joined %s, %d roles",
			name, v.User.ID, v.JoinedAt.Format("2006-01-02"), len(v.Roles))
	case *discordgo.Channel:
		return ctx.Replyf("Channel **#%s** (`%s`), type %d", v.Name, v.ID, v.Type)
	case *discordgo.Role:
		return ctx.Replyf("Role **%s** (`%s`), position %d", v.Name, v.ID, v.Position)
	case *discordgo.Emoji:
		return ctx.Replyf("Emoji **:%s:** (`%s`), animated: %t", v.Name, v.ID, v.Animated)
	case discord.Snowflake:
		return ctx.Replyf("Raw ID `%s` (no matching entity in this server)", v)
	default:
		return fmt.Errorf("unexpected inspect target %T", v)
	}
}
