package discord

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

// Snowflake is a bare Discord ID extracted from a raw ID or any mention form.
type Snowflake string

func (s Snowflake) String() string { return string(s) }

// Parameter types for command signatures. Declaring a parameter with one of
// these resolves to the matching entity converter below.
var (
	MemberType    = bind.TypeOf[*discordgo.Member]()
	UserType      = bind.TypeOf[*discordgo.User]()
	ChannelType   = bind.TypeOf[*discordgo.Channel]()
	RoleType      = bind.TypeOf[*discordgo.Role]()
	GuildType     = bind.TypeOf[*discordgo.Guild]()
	EmojiType     = bind.TypeOf[*discordgo.Emoji]()
	SnowflakeType = bind.TypeOf[Snowflake]()
)

var (
	idRegex             = regexp.MustCompile(`^([0-9]{15,20})$`)
	userMentionRegex    = regexp.MustCompile(`^<@!?([0-9]{15,20})>$`)
	channelMentionRegex = regexp.MustCompile(`^<#([0-9]{15,20})>$`)
	roleMentionRegex    = regexp.MustCompile(`^<@&([0-9]{15,20})>$`)
	emojiRegex          = regexp.MustCompile(`^<a?:[a-zA-Z0-9_]{2,32}:([0-9]{15,20})>$`)
)

func init() {
	bind.RegisterConverter(MemberType, bind.ConverterFunc(convertMember))
	bind.RegisterConverter(UserType, bind.ConverterFunc(convertUser))
	bind.RegisterConverter(ChannelType, bind.ConverterFunc(convertChannel))
	bind.RegisterConverter(RoleType, bind.ConverterFunc(convertRole))
	bind.RegisterConverter(GuildType, bind.ConverterFunc(convertGuild))
	bind.RegisterConverter(EmojiType, bind.ConverterFunc(convertEmoji))
	bind.RegisterConverter(SnowflakeType, bind.ConverterFunc(convertSnowflake))
}

func invocation(data any) (*command.Context, error) {
	inv, ok := data.(*command.Context)
	if !ok || inv == nil || inv.Session == nil {
		return nil, fmt.Errorf("no command context available for entity lookup")
	}
	return inv, nil
}

// matchID pulls a snowflake out of a raw ID or a mention of the given shape.
func matchID(arg string, patterns ...*regexp.Regexp) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(arg); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func convertMember(ctx context.Context, data any, arg string) (any, error) {
	inv, err := invocation(data)
	if err != nil {
		return nil, err
	}
	guildID := inv.Message.GuildID
	if guildID == "" {
		return nil, &bind.BindError{Message: "Member lookup only works inside a server."}
	}

	if id, ok := matchID(arg, userMentionRegex, idRegex); ok {
		if m, err := inv.Session.State.Member(guildID, id); err == nil {
			return m, nil
		}
		if m, err := inv.Session.GuildMember(guildID, id); err == nil {
			return m, nil
		}
	} else if guild, err := inv.Session.State.Guild(guildID); err == nil {
		name := strings.ToLower(arg)
		for _, m := range guild.Members {
			if strings.ToLower(m.User.Username) == name || strings.ToLower(m.Nick) == name {
				return m, nil
			}
		}
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("Member %q not found.", arg)}
}

func convertUser(ctx context.Context, data any, arg string) (any, error) {
	inv, err := invocation(data)
	if err != nil {
		return nil, err
	}
	if id, ok := matchID(arg, userMentionRegex, idRegex); ok {
		if u, err := inv.Session.User(id); err == nil {
			return u, nil
		}
	} else if guild, err := inv.Session.State.Guild(inv.Message.GuildID); err == nil {
		name := strings.ToLower(arg)
		for _, m := range guild.Members {
			if strings.ToLower(m.User.Username) == name {
				return m.User, nil
			}
		}
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("User %q not found.", arg)}
}

func convertChannel(ctx context.Context, data any, arg string) (any, error) {
	inv, err := invocation(data)
	if err != nil {
		return nil, err
	}
	if id, ok := matchID(arg, channelMentionRegex, idRegex); ok {
		if ch, err := inv.Session.State.Channel(id); err == nil {
			return ch, nil
		}
		if ch, err := inv.Session.Channel(id); err == nil {
			return ch, nil
		}
	} else if guild, err := inv.Session.State.Guild(inv.Message.GuildID); err == nil {
		name := strings.ToLower(strings.TrimPrefix(arg, "#"))
		for _, ch := range guild.Channels {
			if strings.ToLower(ch.Name) == name {
				return ch, nil
			}
		}
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("Channel %q not found.", arg)}
}

func convertRole(ctx context.Context, data any, arg string) (any, error) {
	inv, err := invocation(data)
	if err != nil {
		return nil, err
	}
	guildID := inv.Message.GuildID
	if guildID == "" {
		return nil, &bind.BindError{Message: "Role lookup only works inside a server."}
	}

	if id, ok := matchID(arg, roleMentionRegex, idRegex); ok {
		if r, err := inv.Session.State.Role(guildID, id); err == nil {
			return r, nil
		}
	} else if guild, err := inv.Session.State.Guild(guildID); err == nil {
		name := strings.ToLower(arg)
		for _, r := range guild.Roles {
			if strings.ToLower(r.Name) == name {
				return r, nil
			}
		}
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("Role %q not found.", arg)}
}

func convertGuild(ctx context.Context, data any, arg string) (any, error) {
	inv, err := invocation(data)
	if err != nil {
		return nil, err
	}
	if id, ok := matchID(arg, idRegex); ok {
		if g, err := inv.Session.State.Guild(id); err == nil {
			return g, nil
		}
		if g, err := inv.Session.Guild(id); err == nil {
			return g, nil
		}
	} else {
		name := strings.ToLower(arg)
		for _, g := range inv.Session.State.Guilds {
			if strings.ToLower(g.Name) == name {
				return g, nil
			}
		}
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("Server %q not found.", arg)}
}

func convertEmoji(ctx context.Context, data any, arg string) (any, error) {
	inv, err := invocation(data)
	if err != nil {
		return nil, err
	}
	guild, gerr := inv.Session.State.Guild(inv.Message.GuildID)
	if gerr != nil {
		return nil, &bind.BindError{Message: "Emoji lookup only works inside a server."}
	}

	if id, ok := matchID(arg, emojiRegex, idRegex); ok {
		for _, e := range guild.Emojis {
			if e.ID == id {
				return e, nil
			}
		}
	} else {
		name := strings.ToLower(strings.Trim(arg, ":"))
		for _, e := range guild.Emojis {
			if strings.ToLower(e.Name) == name {
				return e, nil
			}
		}
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("Emoji %q not found.", arg)}
}

func convertSnowflake(ctx context.Context, data any, arg string) (any, error) {
	if id, ok := matchID(arg, idRegex, userMentionRegex, channelMentionRegex, roleMentionRegex, emojiRegex); ok {
		return Snowflake(id), nil
	}
	return nil, &bind.BindError{Message: fmt.Sprintf("%q is not a valid Discord ID.", arg)}
}
