package commands

import (
	"fmt"
	"time"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

const purgeLimit = 100

func init() {
	command.MustRegister(&command.Command{
		Name:        "purge",
		Aliases:     []string{"clear"},
		Description: "Delete the last N messages in this channel",
		Category:    "Moderation",
		Params: []bind.Param{
			{Name: "count", Type: bind.TypeOf[int]()},
			{Name: "silent", Type: bind.TypeOf[bool](), Default: false, Optional: true},
		},
		Run: purgeHandler,
	}, command.WithGuildOnly(), command.WithCooldown(10*time.Second, 2), command.WithCommandLog())
}

func purgeHandler(ctx *command.Context, args *bind.Bound) error {
	count := args.Get(0).(int)
	silent := args.Get(1).(bool)

	if count < 1 || count > purgeLimit {
		return &bind.BindError{Message: fmt.Sprintf("Count must be between 1 and %d.", purgeLimit)}
	}

	msgs, err := ctx.Session.ChannelMessages(ctx.Message.ChannelID, count, ctx.Message.ID, "", "")
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
	}
	if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Message.ChannelID, ids); err != nil {
		return fmt.Errorf("bulk delete failed: %w", err)
	}

	if silent {
		return nil
	}
	return ctx.Replyf("🧹 Deleted %d messages.", len(ids))
}
