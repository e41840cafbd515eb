package commands

import (
	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "ping",
		Description: "Pong!",
		Category:    "Information",
		Run:         pingHandler,
	}, command.WithCommandLog())
}

func pingHandler(ctx *command.Context, _ *bind.Bound) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	return ctx.Replyf("🏓 Pong! Response time: `%dms`", latency)
}
