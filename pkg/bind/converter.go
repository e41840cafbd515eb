package bind

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Converter turns one token of user input into a typed value. data is the
// opaque invocation handle the dispatching adapter supplies (for a Discord
// bot, the command context with session and message); converters that need
// platform lookups do them through it, honoring ctx for cancellation.
type Converter interface {
	Convert(ctx context.Context, data any, argument string) (any, error)
}

// ConverterFunc adapts a plain function to Converter.
type ConverterFunc func(ctx context.Context, data any, argument string) (any, error)

func (f ConverterFunc) Convert(ctx context.Context, data any, argument string) (any, error) {
	return f(ctx, data, argument)
}

var (
	regMu      sync.RWMutex
	converters = map[reflect.Type]Converter{}
)

// RegisterConverter maps a concrete type to its converter. Adapters call this
// during startup for their platform types (members, channels, roles, ...);
// builtins for numbers, strings, booleans and durations are pre-registered.
func RegisterConverter(typ reflect.Type, conv Converter) {
	regMu.Lock()
	defer regMu.Unlock()
	converters[typ] = conv
}

func lookupConverter(typ reflect.Type) (Converter, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	c, ok := converters[typ]
	return c, ok
}

// TypeOf builds the reflect.Type for a type expression, e.g.
// bind.TypeOf[*discordgo.User]().
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

var (
	trueWords  = []string{"yes", "y", "true", "t", "1", "enable", "on"}
	falseWords = []string{"no", "n", "false", "f", "0", "disable", "off"}
)

// convertToBool recognizes the usual yes/no words, case-insensitively.
func convertToBool(argument string) (bool, error) {
	lowered := strings.ToLower(argument)
	for _, w := range trueWords {
		if lowered == w {
			return true, nil
		}
	}
	for _, w := range falseWords {
		if lowered == w {
			return false, nil
		}
	}
	return false, bindErrorf("%s is not a recognised boolean option.", argument)
}

// numberConverter parses the token according to the kind of t and returns a
// value of exactly t, so int16 parameters really receive an int16.
func numberConverter(t reflect.Type) Converter {
	return ConverterFunc(func(_ context.Context, _ any, argument string) (any, error) {
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(argument, 10, t.Bits())
			if err != nil {
				return nil, bindErrorf("%q is not a valid whole number.", argument)
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, err := strconv.ParseUint(argument, 10, t.Bits())
			if err != nil {
				return nil, bindErrorf("%q is not a valid whole number.", argument)
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		case reflect.Float32, reflect.Float64:
			n, err := strconv.ParseFloat(argument, t.Bits())
			if err != nil {
				return nil, bindErrorf("%q is not a valid number.", argument)
			}
			return reflect.ValueOf(n).Convert(t).Interface(), nil
		default:
			return nil, bindErrorf("%q cannot be read as a number.", argument)
		}
	})
}

func init() {
	for _, zero := range []any{
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0),
	} {
		t := reflect.TypeOf(zero)
		RegisterConverter(t, numberConverter(t))
	}

	RegisterConverter(reflect.TypeOf(""), ConverterFunc(
		func(_ context.Context, _ any, argument string) (any, error) {
			return argument, nil
		}))

	RegisterConverter(reflect.TypeOf(false), ConverterFunc(
		func(_ context.Context, _ any, argument string) (any, error) {
			return convertToBool(argument)
		}))

	RegisterConverter(reflect.TypeOf(time.Duration(0)), ConverterFunc(
		func(_ context.Context, _ any, argument string) (any, error) {
			d, err := time.ParseDuration(argument)
			if err != nil {
				return nil, bindErrorf("%q is not a valid duration (try 10m or 1h30m).", argument)
			}
			return d, nil
		}))
}

// LiteralValues constrains a parameter to a fixed set of allowed values. The
// token is interpreted under each literal's own type and must equal one of
// them; the matched literal is the bound value.
type LiteralValues struct {
	Values []any
}

// Literals builds a literal-set type expression, e.g.
// bind.Literals("enable", "disable").
func Literals(values ...any) LiteralValues {
	return LiteralValues{Values: values}
}

func newLiteralConverter(ls LiteralValues, param string) (Converter, string, error) {
	if len(ls.Values) == 0 {
		return nil, "", signatureErrorf(param, "literal set needs at least one value")
	}
	display := make([]string, len(ls.Values))
	for i, v := range ls.Values {
		switch v.(type) {
		case string, int, bool, float64:
		default:
			return nil, "", signatureErrorf(param, "unsupported literal %T (want string, int, bool or float64)", v)
		}
		display[i] = fmt.Sprintf("%v", v)
	}
	name := strings.Join(display, "|")

	conv := ConverterFunc(func(_ context.Context, _ any, argument string) (any, error) {
		for _, v := range ls.Values {
			switch lit := v.(type) {
			case string:
				if argument == lit {
					return lit, nil
				}
			case int:
				if n, err := strconv.Atoi(argument); err == nil && n == lit {
					return lit, nil
				}
			case bool:
				if b, err := convertToBool(argument); err == nil && b == lit {
					return lit, nil
				}
			case float64:
				if f, err := strconv.ParseFloat(argument, 64); err == nil && f == lit {
					return lit, nil
				}
			}
		}
		return nil, bindErrorf("%q is not one of: %s.", argument, strings.Join(display, ", "))
	})
	return conv, name, nil
}

// shortTypeName yields the user-facing name of a type, without package paths
// or pointer noise: *discordgo.Member reads as "Member" in error messages.
func shortTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// funcName resolves a readable name for a converter function, for union
// error text.
func funcName(v any) string {
	pc := reflect.ValueOf(v).Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "converter"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
