package commands

import (
	"fmt"
	"sort"
	"strings"

	"server-molt/internal/command"
	"server-molt/pkg/bind"
)

func init() {
	command.MustRegister(&command.Command{
		Name:        "help",
		Description: "List commands, or show details for one",
		Category:    "Information",
		Params: []bind.Param{
			{Name: "command", Type: bind.RestOf(nil), Default: "", Optional: true},
		},
		Run: helpHandler,
	})
}

func helpHandler(ctx *command.Context, args *bind.Bound) error {
	name, _ := args.Rest("command")
	if n := strings.TrimSpace(name.(string)); n != "" {
		return helpForCommand(ctx, n)
	}

	byCategory := map[string][]string{}
	for _, cmd := range command.All() {
		if cmd.Hidden {
			continue
		}
		cat := cmd.Category
		if cat == "" {
			cat = "Other"
		}
		byCategory[cat] = append(byCategory[cat], cmd.Name)
	}

	cats := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	sort.Strings(cats)

	var b strings.Builder
	for _, cat := range cats {
		fmt.Fprintf(&b, "**%s**: `%s`\n", cat, strings.Join(byCategory[cat], "`, `"))
	}
	fmt.Fprintf(&b, "\nUse `%shelp <command>` for details.", ctx.Prefix)
	return ctx.Reply(b.String())
}

func helpForCommand(ctx *command.Context, name string) error {
	cmd, rest, ok := command.Resolve(bind.Tokenize(name))
	if !ok || len(rest) > 0 {
		return &bind.BindError{Message: fmt.Sprintf("No such command: %q.", name)}
	}

	var b strings.Builder
	line := ctx.Prefix + cmd.QualifiedName()
	if u := usage(cmd); u != "" {
		line += " " + u
	}
	fmt.Fprintf(&b, "**%s**\n", line)
	if cmd.Description != "" {
		b.WriteString(cmd.Description + "\n")
	}
	if cmd.Help != "" {
		b.WriteString(cmd.Help + "\n")
	}
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&b, "Aliases: `%s`\n", strings.Join(cmd.Aliases, "`, `"))
	}
	if len(cmd.Subcommands) > 0 {
		names := make([]string, 0, len(cmd.Subcommands))
		for _, sub := range cmd.Subcommands {
			names = append(names, sub.Name)
		}
		fmt.Fprintf(&b, "Subcommands: `%s`\n", strings.Join(names, "`, `"))
	}
	return ctx.Reply(b.String())
}

// usage renders a signature as "<target> [reason...]": angle brackets for
// required parameters, square for optional, a trailing ellipsis for
// multi-token modes.
func usage(cmd *command.Command) string {
	var parts []string
	for _, p := range cmd.Signature().Params() {
		name := p.Name()
		switch p.Mode() {
		case bind.ModeGreedy, bind.ModeVariadic, bind.ModeConsumeRest:
			name += "..."
		}
		if p.Optional() {
			parts = append(parts, "["+name+"]")
		} else {
			parts = append(parts, "<"+name+">")
		}
	}
	return strings.Join(parts, " ")
}
