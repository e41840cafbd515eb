package commands

import (
	"fmt"
	"strings"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
	"server-molt/pkg/util"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "history",
		Description: "Show recently used commands in this server",
		Category:    "Information",
		Hidden:      true,
		Params: []bind.Param{
			{Name: "count", Type: bind.TypeOf[int](), Default: 10, Optional: true},
		},
		Run: historyHandler,
	}, command.WithGuildOnly())
}

func historyHandler(ctx *command.Context, args *bind.Bound) error {
	count := args.Get(0).(int)
	records, err := ctx.Storage.CommandHistory(ctx.Message.GuildID)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(records) == 0 {
		return ctx.Reply("No command history yet.")
	}
	if count > 0 && len(records) > count {
		records = records[len(records)-count:]
	}

	var b strings.Builder
	for _, r := range records {
		when := util.FormatDateTpl(r.Datetime.UnixMilli(), "MM-DD hh:mm")
		fmt.Fprintf(&b, "`%s` **%s**: %s %s\n", when, r.Username, r.Command, r.Args)
	}
	return ctx.Reply(b.String())
}
