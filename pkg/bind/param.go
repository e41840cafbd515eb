// Package bind converts raw command text into typed handler arguments. A
// command declares its parameters once as a Signature; at invocation time the
// signature walks the tokenized message against each parameter's binding mode
// (plain, union, greedy, variadic, consume-rest), runs converters, and hands
// back the bound values. Build-time problems are SignatureError, user input
// problems are BindError.
package bind

import (
	"context"
	"reflect"
	"strings"
)

// Mode is a parameter's binding behavior. Exactly one mode is active per
// parameter.
type Mode int

const (
	// ModePlain binds one token through one converter.
	ModePlain Mode = iota
	// ModeUnion tries alternative converters in declaration order.
	ModeUnion
	// ModeGreedy keeps consuming tokens until one stops converting.
	ModeGreedy
	// ModeVariadic consumes every remaining token into a slice.
	ModeVariadic
	// ModeConsumeRest joins every remaining token into one string.
	ModeConsumeRest
)

func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeUnion:
		return "union"
	case ModeGreedy:
		return "greedy"
	case ModeVariadic:
		return "variadic"
	case ModeConsumeRest:
		return "consume-rest"
	default:
		return "unknown"
	}
}

// Param declares one handler parameter. Type is a type expression: a
// reflect.Type with a registered converter, a Converter value, a converter
// func, Literals(...), nil for raw string passthrough, or one of the
// GreedyOf/OneOf/VariadicOf/RestOf wrappers. Optional marks the parameter as
// having a default; Default may then be any value, including nil.
type Param struct {
	Name     string
	Type     any
	Default  any
	Optional bool
}

// GreedyType wraps an inner type with "repeat until a token fails to
// convert" semantics.
type GreedyType struct{ Inner any }

// GreedyOf builds a greedy type expression around inner.
func GreedyOf(inner any) GreedyType { return GreedyType{Inner: inner} }

// UnionType declares alternative types tried in order.
type UnionType struct{ Alternatives []any }

// OneOf builds a union type expression. Include None to make the parameter
// implicitly optional.
func OneOf(alternatives ...any) UnionType { return UnionType{Alternatives: alternatives} }

type noneType struct{}

// None is the absence marker inside OneOf. A union listing None with no
// explicit default gets nil as its default, mirroring the usual
// "null implies no value" convenience.
var None = noneType{}

// VariadicType declares "catch all remaining tokens as a slice".
type VariadicType struct{ Inner any }

// VariadicOf builds a variadic type expression around inner.
func VariadicOf(inner any) VariadicType { return VariadicType{Inner: inner} }

// RestType declares "join the remaining text into a single value".
type RestType struct{ Inner any }

// RestOf builds a consume-rest type expression around inner. Use nil as
// inner to take the joined text verbatim.
func RestOf(inner any) RestType { return RestType{Inner: inner} }

// CommandParameter is the built, immutable descriptor for one parameter.
// Descriptors are shared read-only across concurrent invocations.
type CommandParameter struct {
	name       string
	mode       Mode
	union      bool
	converters []Converter
	typeName   string
	altNames   []string
	hasDefault bool
	defValue   any
}

// Name returns the declared parameter name.
func (p *CommandParameter) Name() string { return p.name }

// Mode returns the parameter's binding mode.
func (p *CommandParameter) Mode() Mode { return p.mode }

// Optional reports whether the parameter carries a default.
func (p *CommandParameter) Optional() bool { return p.hasDefault }

// TypeName returns the display name of the declared type.
func (p *CommandParameter) TypeName() string { return p.typeName }

// Signature is the ordered descriptor list for one command, built once at
// registration and reused for every invocation.
type Signature struct {
	name   string
	params []*CommandParameter
}

// New builds a Signature for the named command, or fails with a
// *SignatureError when a declaration is unsupported.
func New(name string, params ...Param) (*Signature, error) {
	s := &Signature{name: name}
	seen := map[string]bool{}

	for i, p := range params {
		if i > 0 {
			switch prev := s.params[i-1]; prev.mode {
			case ModeVariadic, ModeConsumeRest:
				return nil, signatureErrorf(prev.name, "a %s parameter must be the last one", prev.mode)
			}
		}

		cp, err := buildParam(p)
		if err != nil {
			return nil, err
		}
		if seen[cp.name] {
			return nil, signatureErrorf(cp.name, "duplicate parameter name")
		}
		seen[cp.name] = true
		s.params = append(s.params, cp)
	}
	return s, nil
}

// Name returns the command name the signature was built for.
func (s *Signature) Name() string { return s.name }

// Params returns the descriptor list. Callers must treat it as read-only.
func (s *Signature) Params() []*CommandParameter { return s.params }

func buildParam(p Param) (*CommandParameter, error) {
	if p.Name == "" {
		return nil, signatureErrorf("", "parameter name is required")
	}

	cp := &CommandParameter{
		name:       p.Name,
		mode:       ModePlain,
		hasDefault: p.Optional,
		defValue:   p.Default,
	}

	typ := p.Type
	switch t := typ.(type) {
	case GreedyType:
		if err := checkGreedyInner(p.Name, t.Inner); err != nil {
			return nil, err
		}
		cp.mode = ModeGreedy
		typ = t.Inner
	case VariadicType:
		if cp.hasDefault {
			return nil, signatureErrorf(p.Name, "variadic parameters cannot have default values")
		}
		if isModeWrapper(t.Inner) {
			return nil, signatureErrorf(p.Name, "variadic inner type cannot be another mode wrapper")
		}
		cp.mode = ModeVariadic
		typ = t.Inner
	case RestType:
		if isModeWrapper(t.Inner) {
			return nil, signatureErrorf(p.Name, "consume-rest inner type cannot be another mode wrapper")
		}
		cp.mode = ModeConsumeRest
		typ = t.Inner
	}

	if u, ok := typ.(UnionType); ok {
		cp.union = true
		if cp.mode == ModePlain {
			cp.mode = ModeUnion
		}
		for _, alt := range u.Alternatives {
			if _, isNone := alt.(noneType); isNone {
				if !cp.hasDefault {
					cp.hasDefault = true
					cp.defValue = nil
				}
				cp.altNames = append(cp.altNames, "None")
				continue
			}
			conv, name, err := resolveConverter(alt, p.Name)
			if err != nil {
				return nil, err
			}
			cp.converters = append(cp.converters, conv)
			cp.altNames = append(cp.altNames, name)
		}
		if len(cp.converters) == 0 {
			return nil, signatureErrorf(p.Name, "a union needs at least one non-None alternative")
		}
		cp.typeName = strings.Join(cp.altNames, " | ")
		return cp, nil
	}

	if _, isNone := typ.(noneType); isNone {
		return nil, signatureErrorf(p.Name, "None is not a type of its own; use it inside OneOf")
	}

	conv, name, err := resolveConverter(typ, p.Name)
	if err != nil {
		return nil, err
	}
	cp.converters = []Converter{conv}
	cp.altNames = []string{name}
	cp.typeName = name
	return cp, nil
}

func isModeWrapper(expr any) bool {
	switch expr.(type) {
	case GreedyType, VariadicType, RestType:
		return true
	}
	return false
}

// checkGreedyInner rejects the degenerate greedy declarations: an absence
// marker or plain text inner (both would swallow everything or nothing), and
// optional unions whose "no match" and "stop consuming" cases are
// indistinguishable.
func checkGreedyInner(param string, inner any) error {
	switch t := inner.(type) {
	case nil:
		return signatureErrorf(param, "greedy of plain text is invalid")
	case noneType:
		return signatureErrorf(param, "greedy of None is invalid")
	case GreedyType, VariadicType, RestType:
		return signatureErrorf(param, "greedy inner type cannot be another mode wrapper")
	case reflect.Type:
		if t == reflect.TypeOf("") {
			return signatureErrorf(param, "greedy of plain text is invalid")
		}
	case UnionType:
		for _, alt := range t.Alternatives {
			if _, isNone := alt.(noneType); isNone {
				return signatureErrorf(param, "greedy of an optional union is invalid")
			}
		}
	}
	return nil
}

func resolveConverter(expr any, param string) (Converter, string, error) {
	switch t := expr.(type) {
	case nil:
		// untyped parameter: identity string passthrough
		return ConverterFunc(func(_ context.Context, _ any, argument string) (any, error) {
			return argument, nil
		}), "string", nil
	case reflect.Type:
		if c, ok := lookupConverter(t); ok {
			return c, shortTypeName(t), nil
		}
		return nil, "", signatureErrorf(param, "no converter registered for type %s", t)
	case Converter:
		return t, shortTypeName(reflect.TypeOf(t)), nil
	case LiteralValues:
		return newLiteralConverter(t, param)
	case func(ctx context.Context, data any, argument string) (any, error):
		return ConverterFunc(t), funcName(t), nil
	case func(argument string) (any, error):
		return ConverterFunc(func(_ context.Context, _ any, argument string) (any, error) {
			return t(argument)
		}), funcName(t), nil
	case func() (any, error):
		// constant-producing "type"; deliberate looseness for defaults
		// masquerading as types
		return ConverterFunc(func(_ context.Context, _ any, _ string) (any, error) {
			return t()
		}), funcName(t), nil
	case GreedyType, UnionType, VariadicType, RestType, noneType:
		return nil, "", signatureErrorf(param, "%T cannot be nested here", t)
	default:
		if rt := reflect.TypeOf(expr); rt != nil && rt.Kind() == reflect.Func {
			return nil, "", signatureErrorf(param,
				"converter func has an unsupported signature; want (ctx, data, argument), (argument) or ()")
		}
		return nil, "", signatureErrorf(param, "unsupported type expression %T", expr)
	}
}
