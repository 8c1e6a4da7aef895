package tgdango

// NextFunc continues the middleware chain.
type NextFunc func() error

// Middleware is one stage of the chain every update passes through.
// It may act before and after calling next, and must call next at most once.
type Middleware func(c *Context, next NextFunc) error

// Compose combines the middlewares into one, running them in the given order.
//
// The next function of the last middleware calls the next function given to the composed one.
// Calling a next function twice returns [ErrNextCalledTwice].
func Compose(mws ...Middleware) Middleware {
	mws = append([]Middleware(nil), mws...)

	return func(c *Context, next NextFunc) error {
		var run func(i int) error
		run = func(i int) error {
			if i == len(mws) {
				if next == nil {
					return nil
				}
				return next()
			}

			called := false
			return mws[i](c, func() error {
				if called {
					return ErrNextCalledTwice
				}
				called = true
				return run(i + 1)
			})
		}

		return run(0)
	}
}
