package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"server-molt/pkg/bind"
)

func testContext(cmd *Command) *Context {
	return &Context{Ctx: context.Background(), Command: cmd}
}

func TestRegisterAndResolve(t *testing.T) {
	t.Cleanup(func() { registry = map[string]*Command{} })

	ran := ""
	leaf := func(name string) HandlerFunc {
		return func(ctx *Context, args *bind.Bound) error {
			ran = name
			return nil
		}
	}

	require.NoError(t, Register(&Command{
		Name:    "tag",
		Aliases: []string{"t"},
		Run:     leaf("tag"),
		Subcommands: []*Command{
			{
				Name:   "add",
				Params: []bind.Param{{Name: "name", Type: bind.TypeOf[string]()}},
				Run:    leaf("tag add"),
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Params:  []bind.Param{{Name: "name", Type: bind.TypeOf[string]()}},
				Run:     leaf("tag remove"),
			},
		},
	}))

	cmd, rest, ok := Resolve([]string{"tag", "add", "greeting"})
	require.True(t, ok)
	require.Equal(t, "tag add", cmd.QualifiedName())
	require.Equal(t, []string{"greeting"}, rest)

	cmd, rest, ok = Resolve([]string{"t", "rm", "greeting"})
	require.True(t, ok)
	require.Equal(t, "tag remove", cmd.QualifiedName())
	require.Equal(t, []string{"greeting"}, rest)

	// unknown subcommand stays an argument to the parent
	cmd, rest, ok = Resolve([]string{"tag", "whatever"})
	require.True(t, ok)
	require.Equal(t, "tag", cmd.QualifiedName())
	require.Equal(t, []string{"whatever"}, rest)

	_, _, ok = Resolve([]string{"nope"})
	require.False(t, ok)

	require.NoError(t, cmd.Invoke(testContext(cmd), nil))
	require.Equal(t, "tag", ran)
}

func TestRegisterDuplicateAlias(t *testing.T) {
	t.Cleanup(func() { registry = map[string]*Command{} })

	noop := func(ctx *Context, args *bind.Bound) error { return nil }

	require.NoError(t, Register(&Command{Name: "ping", Run: noop}))
	require.Error(t, Register(&Command{Name: "p", Aliases: []string{"ping"}, Run: noop}))
}

func TestRegisterBadSignatureFailsEarly(t *testing.T) {
	t.Cleanup(func() { registry = map[string]*Command{} })

	err := Register(&Command{
		Name: "bad",
		Params: []bind.Param{
			{Name: "words", Type: bind.VariadicOf(nil), Optional: true, Default: []any{}},
		},
		Run: func(ctx *Context, args *bind.Bound) error { return nil },
	})
	require.Error(t, err)

	var sigErr *bind.SignatureError
	require.ErrorAs(t, err, &sigErr)

	_, ok := Get("bad")
	require.False(t, ok)
}

func TestRegisterNeitherRunNorSubcommands(t *testing.T) {
	t.Cleanup(func() { registry = map[string]*Command{} })

	require.Error(t, Register(&Command{Name: "empty"}))
}

func TestMiddlewareOrderAndPropagation(t *testing.T) {
	t.Cleanup(func() { registry = map[string]*Command{} })

	var order []string
	mw := func(tag string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx *Context, args *bind.Bound) error {
				order = append(order, tag)
				return next(ctx, args)
			}
		}
	}

	require.NoError(t, Register(&Command{
		Name: "outer",
		Run: func(ctx *Context, args *bind.Bound) error {
			order = append(order, "run")
			return nil
		},
		Subcommands: []*Command{
			{
				Name: "inner",
				Run: func(ctx *Context, args *bind.Bound) error {
					order = append(order, "sub-run")
					return nil
				},
			},
		},
	}, mw("first"), mw("second")))

	cmd, _, _ := Resolve([]string{"outer"})
	require.NoError(t, cmd.Invoke(testContext(cmd), nil))
	require.Equal(t, []string{"first", "second", "run"}, order)

	order = nil
	sub, _, _ := Resolve([]string{"outer", "inner"})
	require.NoError(t, sub.Invoke(testContext(sub), nil))
	require.Equal(t, []string{"first", "second", "sub-run"}, order)
}

func TestInvokeBindsArguments(t *testing.T) {
	t.Cleanup(func() { registry = map[string]*Command{} })

	var got int
	require.NoError(t, Register(&Command{
		Name:   "take",
		Params: []bind.Param{{Name: "n", Type: bind.TypeOf[int]()}},
		Run: func(ctx *Context, args *bind.Bound) error {
			got = args.Get(0).(int)
			return nil
		},
	}))

	cmd, rest, _ := Resolve([]string{"take", "42"})
	require.NoError(t, cmd.Invoke(testContext(cmd), rest))
	require.Equal(t, 42, got)

	err := cmd.Invoke(testContext(cmd), []string{"x"})
	var bindErr *bind.BindError
	require.ErrorAs(t, err, &bindErr)
}
