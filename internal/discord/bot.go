package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"server-molt/internal/config"
	"server-molt/internal/reminder"
	"server-molt/internal/storage"
)

// Bot is the Discord gateway adapter: it owns the session and feeds incoming
// messages to the command dispatcher.
type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	storage   *storage.Storage
	startedAt time.Time
}

func NewBot(cfg *config.Config, store *storage.Storage) *Bot {
	return &Bot{
		cfg:     cfg,
		storage: store,
	}
}

// StartedAt reports when the gateway connection came up.
func (b *Bot) StartedAt() time.Time { return b.startedAt }

// Run connects and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}
	b.startedAt = time.Now()

	reminder.DefaultManager.SetNotify(func(r reminder.Reminder) {
		msg := fmt.Sprintf("<@%s> Reminder: %s", r.UserID, r.Text)
		if _, err := dg.ChannelMessageSend(r.ChannelID, msg); err != nil {
			log.Printf("[WARN] Failed to deliver reminder %s: %v", r.ID, err)
		}
	})

	<-ctx.Done()
	log.Println("[INFO] Closing Discord session...")
	reminder.DefaultManager.Shutdown()
	return dg.Close()
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s (%d guilds)", r.User.Username, len(r.Guilds))
}
