package discord

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

var mentionEscapeRegex = regexp.MustCompile(`@(everyone|here|[!&]?[0-9]{15,20})`)

// escapeMentions defangs pings in text echoed back to a channel.
func escapeMentions(text string) string {
	return mentionEscapeRegex.ReplaceAllString(text, "@​$1")
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	prefix := b.cfg.DefaultPrefix
	if m.GuildID != "" {
		prefix = b.storage.Prefix(m.GuildID, prefix)
	}
	if !strings.HasPrefix(m.Content, prefix) {
		return
	}

	raw := strings.TrimSpace(strings.TrimPrefix(m.Content, prefix))
	if raw == "" {
		return
	}

	fields := bind.Tokenize(raw)
	cmd, rest, ok := command.Resolve(fields)
	if !ok {
		return
	}
	if m.GuildID != "" && b.storage.IsCommandDisabled(m.GuildID, cmd.Root().Name) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inv := &command.Context{
		Ctx:     ctx,
		Session: s,
		Message: m,
		Storage: b.storage,
		Command: cmd,
		Prefix:  prefix,
	}

	if err := cmd.Invoke(inv, rest); err != nil {
		var bindErr *bind.BindError
		if errors.As(err, &bindErr) {
			if rerr := inv.Reply(escapeMentions(bindErr.Message)); rerr != nil {
				log.Printf("[WARN] Failed to reply in channel %s: %v", m.ChannelID, rerr)
			}
			return
		}
		log.Printf("[ERR] Command %s failed: %v", cmd.QualifiedName(), err)
		_ = inv.Reply("Something went wrong while running that command.")
	}
}
