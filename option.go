package tgdango

import "github.com/prometheus/client_golang/prometheus"

// Option represents a configurable parameter for the Application.
type Option func(*Application)

// WithPersistence enables the persistence layer for the application.
//
// Args:
//   - persistence: The persistence layer to use for the application.
//
// Returns:
//   - Option: A function that applies the specified persistence layer to the Application.
func WithPersistence(persistence Persistence) Option {
	return func(a *Application) {
		a.persistence = persistence
	}
}

// WithDebug enables debug mode for the application.
//
// When debug mode is enabled, the application logs at debug level,
// including the logs of telego.
//
// Returns:
//   - Option: A function that enables debug mode for the Application.
func WithDebug() Option {
	return func(a *Application) {
		a.Config.Debug = true
	}
}

// WithBot uses the given bot instead of creating one from the token.
//
// Args:
//   - bot: The bot, usually a [*telego.Bot].
//
// Returns:
//   - Option: A function that sets the bot of the Application.
func WithBot(bot Bot) Option {
	return func(a *Application) {
		a.bot = bot
	}
}

// WithTransport replaces the transport given to every [Context].
// Without a bot, the application can only handle the updates given to [Application.HandleUpdate].
//
// Args:
//   - transport: The transport performing the outgoing calls.
//
// Returns:
//   - Option: A function that sets the transport of the Application.
func WithTransport(transport Transport) Option {
	return func(a *Application) {
		a.Telegram = transport
	}
}

// WithMetrics registers the update metrics and observes every update.
//
// Args:
//   - reg: The registerer, e.g. [prometheus.DefaultRegisterer].
//
// Returns:
//   - Option: A function that enables the metrics of the Application.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(a *Application) {
		a.metrics = NewMetrics(reg)
	}
}

// WithMiddleware appends middlewares to the chain, see [Application.Use].
func WithMiddleware(mws ...Middleware) Option {
	return func(a *Application) {
		a.Use(mws...)
	}
}
