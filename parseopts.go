package arith

// DefaultMaxDepth is the parenthesis nesting depth allowed when no MaxDepth
// option is given.
const DefaultMaxDepth = 256

// Option is an option for evaluation.
type Option interface {
	evalOption(evalctx) evalctx
}

// evalctx holds the settings for a single evaluation.
type evalctx struct {
	// maxdepth is the deepest parenthesis nesting allowed.
	maxdepth int
}

type depthopt int

// MaxDepth sets the deepest parenthesis nesting that evaluation accepts.
// Deeper input fails with NestingTooDeep. Values less than 1 restore the
// default.
func MaxDepth(n int) Option {
	return depthopt(n)
}

func (o depthopt) evalOption(p evalctx) evalctx {
	if o < 1 {
		p.maxdepth = DefaultMaxDepth
		return p
	}
	p.maxdepth = int(o)
	return p
}

func newctx(opts []Option) evalctx {
	p := evalctx{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.evalOption(p)
	}
	return p
}
