package commands

import (
	"strconv"

	"server-molt/internal/command"
	"server-molt/internal/version"
	"server-molt/pkg/bind"
	"server-molt/pkg/util"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "about",
		Description: "Bot version and build info",
		Category:    "Information",
		Run:         aboutHandler,
	})
}

func aboutHandler(ctx *command.Context, _ *bind.Bound) error {
	built := "unknown"
	if ts, err := strconv.ParseInt(version.BuildDate, 10, 64); err == nil {
		built = util.FormatDateTpl(ts, "YYYY-MM-DD hh:mm")
	}
	return ctx.Replyf("**%s** %s\n%s\nBuilt: %s",
		version.AppName, version.Version, version.AppDesc, built)
}
