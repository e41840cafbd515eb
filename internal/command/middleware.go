package command

import (
	"log"
	"time"

	"server-molt/internal/storage"
	"server-molt/pkg/bind"
	"server-molt/pkg/cooldown"
)

// Middleware wraps a command handler (logging, guild gating, cooldowns).
type Middleware func(HandlerFunc) HandlerFunc

// Apply applies middlewares in order; the first in the list is the outermost.
func Apply(h HandlerFunc, mws ...Middleware) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// WithGuildOnly rejects invocations outside of a guild (DMs).
func WithGuildOnly() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx *Context, args *bind.Bound) error {
			if ctx.Message.GuildID == "" {
				return &bind.BindError{Message: "This command cannot be used in private messages."}
			}
			return next(ctx, args)
		}
	}
}

// WithCommandLog records each execution to the guild's history and stdout.
func WithCommandLog() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx *Context, args *bind.Bound) error {
			name := ctx.Command.QualifiedName()
			log.Printf("[INFO] Command %s by %s in %s", name, ctx.Message.Author.Username, ctx.Message.ChannelID)

			if ctx.Message.GuildID != "" {
				err := ctx.Storage.LogCommand(ctx.Message.GuildID, storage.CommandHistoryRecord{
					ChannelID: ctx.Message.ChannelID,
					UserID:    ctx.Message.Author.ID,
					Username:  ctx.Message.Author.Username,
					Command:   name,
					Args:      ctx.Message.Content,
					Datetime:  time.Now(),
				})
				if err != nil {
					log.Printf("[WARN] Failed to log command %s: %v", name, err)
				}
			}
			return next(ctx, args)
		}
	}
}

// WithCooldown limits each user to burst invocations per interval, per guild.
func WithCooldown(every time.Duration, burst int) Middleware {
	keeper := cooldown.New(every, burst)
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx *Context, args *bind.Bound) error {
			key := ctx.Message.GuildID + ":" + ctx.Message.Author.ID
			if !keeper.Allow(key) {
				return &bind.BindError{Message: "Slow down, that command is on cooldown."}
			}
			return next(ctx, args)
		}
	}
}
