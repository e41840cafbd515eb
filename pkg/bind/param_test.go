package bind

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewModes(t *testing.T) {
	sig, err := New("test",
		Param{Name: "count", Type: TypeOf[int]()},
		Param{Name: "target", Type: OneOf(TypeOf[int](), TypeOf[float64]())},
		Param{Name: "nums", Type: GreedyOf(TypeOf[int]()), Optional: true, Default: []any{}},
		Param{Name: "reason", Type: RestOf(nil), Optional: true, Default: ""},
	)
	require.NoError(t, err)

	params := sig.Params()
	require.Len(t, params, 4)
	require.Equal(t, ModePlain, params[0].Mode())
	require.Equal(t, ModeUnion, params[1].Mode())
	require.Equal(t, ModeGreedy, params[2].Mode())
	require.Equal(t, ModeConsumeRest, params[3].Mode())

	require.False(t, params[0].Optional())
	require.True(t, params[2].Optional())
}

func TestNewImplicitOptionalUnion(t *testing.T) {
	sig, err := New("test",
		Param{Name: "who", Type: OneOf(TypeOf[int](), None)},
	)
	require.NoError(t, err)
	require.True(t, sig.Params()[0].Optional())

	// an explicit default wins over the implicit nil
	sig, err = New("test",
		Param{Name: "who", Type: OneOf(TypeOf[int](), None), Optional: true, Default: 42},
	)
	require.NoError(t, err)

	bound, err := sig.Bind(context.Background(), nil, "", true)
	require.NoError(t, err)
	require.Equal(t, 42, bound.Get(0))
}

func TestNewSignatureErrors(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
	}{
		{
			name: "variadic with default",
			params: []Param{
				{Name: "words", Type: VariadicOf(nil), Optional: true, Default: []any{}},
			},
		},
		{
			name: "variadic not last",
			params: []Param{
				{Name: "words", Type: VariadicOf(nil)},
				{Name: "after", Type: TypeOf[int]()},
			},
		},
		{
			name: "consume-rest not last",
			params: []Param{
				{Name: "rest", Type: RestOf(nil)},
				{Name: "after", Type: TypeOf[int]()},
			},
		},
		{
			name: "greedy of plain text",
			params: []Param{
				{Name: "words", Type: GreedyOf(TypeOf[string]())},
			},
		},
		{
			name: "greedy of untyped",
			params: []Param{
				{Name: "words", Type: GreedyOf(nil)},
			},
		},
		{
			name: "greedy of none",
			params: []Param{
				{Name: "words", Type: GreedyOf(None)},
			},
		},
		{
			name: "greedy of optional union",
			params: []Param{
				{Name: "words", Type: GreedyOf(OneOf(TypeOf[int](), None))},
			},
		},
		{
			name: "unregistered type",
			params: []Param{
				{Name: "conn", Type: TypeOf[chan int]()},
			},
		},
		{
			name: "converter func with bad shape",
			params: []Param{
				{Name: "x", Type: func(a, b, c, d string) (any, error) { return nil, nil }},
			},
		},
		{
			name: "bare none",
			params: []Param{
				{Name: "x", Type: None},
			},
		},
		{
			name: "duplicate names",
			params: []Param{
				{Name: "x", Type: TypeOf[int]()},
				{Name: "x", Type: TypeOf[int]()},
			},
		},
		{
			name: "missing name",
			params: []Param{
				{Type: TypeOf[int]()},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("test", tc.params...)
			require.Error(t, err)

			var sigErr *SignatureError
			require.ErrorAs(t, err, &sigErr)
		})
	}
}

func TestGreedyOfNonOptionalUnionIsValid(t *testing.T) {
	_, err := New("test",
		Param{Name: "nums", Type: GreedyOf(OneOf(TypeOf[int](), TypeOf[float64]()))},
	)
	require.NoError(t, err)
}

func TestConverterFuncArities(t *testing.T) {
	full := func(ctx context.Context, data any, argument string) (any, error) {
		return "full:" + argument, nil
	}
	single := func(argument string) (any, error) {
		return "single:" + argument, nil
	}
	zero := func() (any, error) {
		return "constant", nil
	}

	sig, err := New("test",
		Param{Name: "a", Type: full},
		Param{Name: "b", Type: single},
		Param{Name: "c", Type: zero},
	)
	require.NoError(t, err)

	bound, err := sig.Bind(context.Background(), nil, "one two three", true)
	require.NoError(t, err)
	require.Equal(t, "full:one", bound.Get(0))
	require.Equal(t, "single:two", bound.Get(1))
	require.Equal(t, "constant", bound.Get(2))
}

func TestRegisteredConverterByType(t *testing.T) {
	type vec struct{ x, y int }

	RegisterConverter(reflect.TypeOf(vec{}), ConverterFunc(
		func(_ context.Context, _ any, argument string) (any, error) {
			if argument != "origin" {
				return nil, bindErrorf("unknown point %q.", argument)
			}
			return vec{}, nil
		}))

	sig, err := New("test", Param{Name: "p", Type: reflect.TypeOf(vec{})})
	require.NoError(t, err)

	bound, err := sig.Bind(context.Background(), nil, "origin", true)
	require.NoError(t, err)
	require.Equal(t, vec{}, bound.Get(0))
}

func TestBuiltinDuration(t *testing.T) {
	sig, err := New("test", Param{Name: "d", Type: TypeOf[time.Duration]()})
	require.NoError(t, err)

	bound, err := sig.Bind(context.Background(), nil, "1h30m", true)
	require.NoError(t, err)
	require.Equal(t, 90*time.Minute, bound.Get(0))

	_, err = sig.Bind(context.Background(), nil, "soon", true)
	require.Error(t, err)
}

func TestLiterals(t *testing.T) {
	sig, err := New("test", Param{Name: "action", Type: Literals("enable", "disable")})
	require.NoError(t, err)

	bound, err := sig.Bind(context.Background(), nil, "enable", true)
	require.NoError(t, err)
	require.Equal(t, "enable", bound.Get(0))

	_, err = sig.Bind(context.Background(), nil, "explode", true)
	var bindErr *BindError
	require.ErrorAs(t, err, &bindErr)
	require.Contains(t, bindErr.Message, "enable")
	require.Contains(t, bindErr.Message, "disable")
}

func TestLiteralsMixedTypes(t *testing.T) {
	sig, err := New("test", Param{Name: "v", Type: Literals("max", 3)})
	require.NoError(t, err)

	bound, err := sig.Bind(context.Background(), nil, "3", true)
	require.NoError(t, err)
	require.Equal(t, 3, bound.Get(0))

	bound, err = sig.Bind(context.Background(), nil, "max", true)
	require.NoError(t, err)
	require.Equal(t, "max", bound.Get(0))
}
