package bind

import (
	"context"
)

// Bound is the outcome of a successful bind: positional values in declaration
// order (greedy and variadic parameters bind a []any), the consume-rest value
// under its parameter name, and a flag per parameter that fell back to its
// default instead of consuming a token.
type Bound struct {
	Positional []any
	Named      map[string]any
	Defaulted  map[string]bool
}

// Get returns the i-th positional value, nil when out of range.
func (b *Bound) Get(i int) any {
	if i < 0 || i >= len(b.Positional) {
		return nil
	}
	return b.Positional[i]
}

// Rest returns the consume-rest value bound under name.
func (b *Bound) Rest(name string) (any, bool) {
	v, ok := b.Named[name]
	return v, ok
}

// UsedDefault reports whether the named parameter was filled from its
// default rather than from a converted token.
func (b *Bound) UsedDefault(name string) bool {
	return b.Defaulted[name]
}

// Bind tokenizes raw and binds it against the signature. data is the opaque
// invocation handle passed through to converters. When ignoreExtra is false,
// leftover tokens after every parameter is bound are an error; otherwise they
// are discarded.
func (s *Signature) Bind(ctx context.Context, data any, raw string, ignoreExtra bool) (*Bound, error) {
	return s.BindTokens(ctx, data, Tokenize(raw), ignoreExtra)
}

// BindTokens binds already-tokenized arguments. Each token carrying an outer
// quote pair has it stripped here; the tokenizer leaves quotes in place.
func (s *Signature) BindTokens(ctx context.Context, data any, tokens []string, ignoreExtra bool) (*Bound, error) {
	bound := &Bound{
		Named:     map[string]any{},
		Defaulted: map[string]bool{},
	}
	if len(s.params) == 0 {
		return bound, nil
	}

	fixed := make([]string, len(tokens))
	for i, t := range tokens {
		fixed[i] = unquote(t)
	}
	args := NewCursor(fixed)
	pi := 0

outer:
	for {
		tok, ok := args.Next()
		if !ok {
			break
		}
		if pi >= len(s.params) {
			args.Back()
			break
		}

	inner:
		for pi < len(s.params) {
			param := s.params[pi]

			switch param.mode {
			case ModeConsumeRest:
				joined := tok
				if rest := args.ConsumeRest(); len(rest) > 0 {
					joined += " " + joinTokens(rest)
				}
				v, usedDefault, err := param.convert(ctx, data, joined)
				if err != nil {
					return nil, err
				}
				bound.Named[param.name] = v
				bound.Defaulted[param.name] = usedDefault
				pi++
				break outer

			case ModeVariadic:
				var values []any
				for {
					v, err := param.convertToken(ctx, data, tok)
					if err != nil {
						// variadic elements are all-or-nothing
						return nil, err
					}
					values = append(values, v)
					next, ok := args.Next()
					if !ok {
						break
					}
					tok = next
				}
				bound.Positional = append(bound.Positional, values)
				pi++
				break outer

			case ModeGreedy:
				args.Back() // re-read the current token as the first candidate
				var values []any
				brokeOff := false
				for {
					t, ok := args.Peek()
					if !ok {
						break
					}
					v, err := param.convertToken(ctx, data, t)
					if err != nil {
						// the token may belong to the next parameter
						brokeOff = true
						break
					}
					args.Next()
					values = append(values, v)
				}

				if len(values) == 0 {
					if !param.hasDefault {
						return nil, bindErrorf("Failed to find any arguments for %s.", param.typeName)
					}
					bound.Positional = append(bound.Positional, param.defValue)
					bound.Defaulted[param.name] = true
					pi++
					break inner
				}

				bound.Positional = append(bound.Positional, values)
				pi++
				if param.hasDefault && brokeOff {
					// optional trailing greedy: hand the token we stopped on
					// to the next parameter without going through the outer
					// loop. Easy to misuse with ambiguous signatures; see the
					// package tests.
					next, ok := args.Next()
					if !ok {
						break outer
					}
					tok = next
					continue inner
				}
				break inner

			default: // ModePlain, ModeUnion
				v, usedDefault, err := param.convert(ctx, data, tok)
				if err != nil {
					return nil, err
				}
				bound.Positional = append(bound.Positional, v)
				bound.Defaulted[param.name] = usedDefault
				pi++
				if usedDefault {
					// the default consumed nothing; retry the same token
					// against the next parameter
					continue inner
				}
				break inner
			}
		}
	}

	if pi < len(s.params) {
		// tokens ran out; everything left must be optional
		for _, param := range s.params[pi:] {
			if !param.hasDefault {
				return nil, bindErrorf("Missing argument for %s.", param.name)
			}
			bound.Defaulted[param.name] = true
			if param.mode == ModeConsumeRest {
				bound.Named[param.name] = param.defValue
				break
			}
			bound.Positional = append(bound.Positional, param.defValue)
		}
	} else if !ignoreExtra && !args.Finished() {
		return nil, bindErrorf("Too many arguments passed to %s.", s.name)
	}

	return bound, nil
}

// convertToken runs the converter chain without any default fallback. For
// non-union parameters without a default the first failure is fatal,
// preserving the converter's own message; union chains swallow individual
// failures and report only full exhaustion.
func (p *CommandParameter) convertToken(ctx context.Context, data any, argument string) (any, error) {
	for _, conv := range p.converters {
		v, err := conv.Convert(ctx, data, argument)
		if err == nil {
			return v, nil
		}
		if !p.union && !p.hasDefault {
			return nil, wrapBindError(err)
		}
	}
	return nil, bindErrorf("Could not convert %q into %s.", argument, p.alternativesText())
}

// convert runs the converter chain and falls back to the parameter default
// when conversion fails and a default exists.
func (p *CommandParameter) convert(ctx context.Context, data any, argument string) (any, bool, error) {
	v, err := p.convertToken(ctx, data, argument)
	if err == nil {
		return v, false, nil
	}
	if p.hasDefault {
		return p.defValue, true, nil
	}
	return nil, false, err
}

// alternativesText joins the union alternative names for error messages:
// "int, or Member".
func (p *CommandParameter) alternativesText() string {
	n := len(p.altNames)
	if n == 0 {
		return p.typeName
	}
	if n == 1 {
		return p.altNames[0]
	}
	out := ""
	for i, name := range p.altNames[:n-1] {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out + ", or " + p.altNames[n-1]
}
