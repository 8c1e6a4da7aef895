package tgdango

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"
	"unicode"

	"github.com/mymmrac/telego"
	"github.com/n0h4rt/tgdango/utils"
	"github.com/rs/zerolog/log"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/net/proxy"
)

// Bot is the telego bot used by the application, for sending and for receiving updates.
type Bot interface {
	TelegoBot
	Username() string
	UpdatesViaLongPolling(ctx context.Context, params *telego.GetUpdatesParams, options ...telego.LongPollingOption) (<-chan telego.Update, error)
}

// Application represents the main application.
//
// It receives the updates of the bot, passes each of them through the middleware chain,
// dispatches them to the handlers and routes the failures to the error handlers.
// The application also manages data persistence.
type Application struct {
	Config        *Config            // Config holds the configuration for the application.
	Telegram      Transport          // Telegram is the transport given to every [Context].
	bot           Bot                // bot receives the updates.
	username      string             // username of the bot, used to match "/cmd@username".
	persistence   Persistence        // Persistence manages data persistence for the application.
	metrics       *Metrics           // metrics observes the handled updates, if enabled.
	middlewares   []Middleware       // middlewares run before the handlers, in order.
	eventHandlers []Handler          // eventHandlers contains the registered event handlers for the application.
	errorHandlers []Handler          // errorHandlers contains the registered error handlers for the application.
	context       context.Context    // Context for running the application.
	cancelCtx     context.CancelFunc // Function for stopping the application.
	initialized   bool               // initialized indicates whether the application has been initialized.
	wg            sync.WaitGroup     // wg tracks the poller and the running updates.
}

// Use appends middlewares to the chain.
//
// Args:
//   - mws: The middlewares, e.g. [NewReplies].
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) Use(mws ...Middleware) *Application {
	app.middlewares = append(app.middlewares, mws...)

	return app
}

// AddHandler adds a new handler to the application.
//
// Args:
//   - handler: The handler to add to the application.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) AddHandler(handler Handler) *Application {
	app.bind(handler)
	app.eventHandlers = append(app.eventHandlers, handler)

	return app
}

// RemoveHandler removes a handler from the application.
//
// Args:
//   - handler: The handler to remove from the application.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) RemoveHandler(handler Handler) *Application {
	app.eventHandlers = utils.Remove(app.eventHandlers, handler)

	return app
}

// AddErrorHandler adds a new error handler to the application.
// Error handlers receive the [Context] of the failed update with [Context.Error] set.
//
// Args:
//   - handler: The error handler to add to the application.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) AddErrorHandler(handler Handler) *Application {
	app.bind(handler)
	app.errorHandlers = append(app.errorHandlers, handler)

	return app
}

// RemoveErrorHandler removes an error handler from the application.
//
// Args:
//   - handler: The error handler to remove from the application.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) RemoveErrorHandler(handler Handler) *Application {
	app.errorHandlers = utils.Remove(app.errorHandlers, handler)

	return app
}

func (app *Application) bind(handler Handler) {
	switch h := handler.(type) {
	case *CommandHandler:
		h.app = app
	case *UnknownCommandHandler:
		h.app = app
	}
}

// HandleUpdate passes one update through the middleware chain and the handlers.
//
// A panic in a middleware or a handler is recovered and treated as an error.
// Errors are given to the error handlers, then returned.
//
// Args:
//   - ctx: The context of the update.
//   - update: The update to handle.
//
// Returns:
//   - error: The error of the chain, if any.
func (app *Application) HandleUpdate(ctx context.Context, update telego.Update) error {
	if !app.initialized {
		return ErrNotInitialized
	}

	c := NewContext(ctx, update, app.Telegram)
	c.App = app
	c.BotData = app.persistence.GetBotData()
	if key, ok := c.chatKey(); ok {
		c.ChatData = app.persistence.GetChatData(key)
	}

	log.Debug().Str("ID", c.ID).Str("UpdateType", c.UpdateType.String()).Int("UpdateID", update.UpdateID).Msg("Handling update.")

	mws := make([]Middleware, 0, len(app.middlewares)+2)
	if app.metrics != nil {
		mws = append(mws, app.metrics.Middleware())
	}
	mws = append(mws, recoverer)
	mws = append(mws, app.middlewares...)

	err := Compose(mws...)(c, func() error {
		return app.dispatchEvent(c)
	})
	if err != nil {
		c.Error = err
		log.Error().Str("ID", c.ID).Str("UpdateType", c.UpdateType.String()).Err(err).Msg("Update handling error.")
		app.dispatchError(c)
	}

	return err
}

// recoverer turns a panic of the rest of the chain into an error.
func recoverer(c *Context, next NextFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug().Str("ID", c.ID).Bytes("Stack", debug.Stack()).Msg("Recovered panic.")
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return next()
}

// dispatchEvent invokes every handler accepting the context.
//
// Args:
//   - c: The context of the update.
//
// Returns:
//   - error: The joined errors of the handlers.
func (app *Application) dispatchEvent(c *Context) error {
	var errs []error
	for _, handler := range app.eventHandlers {
		if handler.Check(c) {
			if err := handler.Invoke(c); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// dispatchError dispatches the context of a failed update to the error handlers.
//
// Args:
//   - c: The context, with [Context.Error] set.
func (app *Application) dispatchError(c *Context) {
	for _, handler := range app.errorHandlers {
		if !handler.Check(c) {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().
						Str("ID", c.ID).
						AnErr("Origin", c.Error).
						Interface("Current", r).
						Msg("Another error occured during handling an error.")
				}
			}()

			if err := handler.Invoke(c); err != nil {
				log.Error().
					Str("ID", c.ID).
					AnErr("Origin", c.Error).
					AnErr("Current", err).
					Msg("Another error occured during handling an error.")
			}
		}()
	}
}

// Initialize initializes the application.
//
// It assigns the default configuration values, prepares the persistence layer
// and creates the bot unless one was given with [WithBot] or [WithTransport].
//
// Returns:
//   - error: An error if the persistence or the bot cannot be prepared.
func (app *Application) Initialize() error {
	app.checkConfig()
	setLogLevel(app.Config.Debug)

	if app.persistence == nil {
		persistence, err := newPersistence(app.Config)
		if err != nil {
			return err
		}
		app.persistence = persistence
	}
	if err := app.persistence.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	if app.bot == nil && app.Telegram == nil {
		bot, err := app.newBot()
		if err != nil {
			return err
		}
		app.bot = bot
	}
	if app.bot != nil {
		app.username = app.bot.Username()
		if app.Telegram == nil {
			app.Telegram = NewTelegoTransport(app.bot)
		}
	}

	app.initialized = true
	log.Debug().Str("Username", app.username).Msg("Application initialized.")

	return nil
}

// checkConfig checks certain configurations and assigns default values if they are left unset.
func (app *Application) checkConfig() {
	if app.Config.Prefix == "" {
		app.Config.Prefix = DEFAULT_PREFIX
	}
	if app.Config.PollTimeout <= 0 {
		app.Config.PollTimeout = DEFAULT_POLL_TIMEOUT
	}
	if app.Config.Workers <= 0 {
		app.Config.Workers = DEFAULT_WORKERS
	}
}

// newBot creates the telego bot from the configuration.
func (app *Application) newBot() (*telego.Bot, error) {
	if app.Config.Token == "" {
		return nil, ErrNoToken
	}

	opts := []telego.BotOption{telego.WithLogger(newTelegoLogger())}
	if app.Config.APIServer != "" {
		opts = append(opts, telego.WithAPIServer(app.Config.APIServer))
	}
	if app.Config.ProxyURL != "" {
		client, err := newProxyClient(app.Config.ProxyURL)
		if err != nil {
			return nil, err
		}
		opts = append(opts, telego.WithHTTPClient(client))
	}

	bot, err := telego.NewBot(app.Config.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return bot, nil
}

// newProxyClient returns an HTTP client going through the proxy.
// HTTP(S) proxies are used as such, other schemes (e.g. "socks5") are dialed with [proxy.FromURL].
func newProxyClient(rawURL string) (*http.Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	default:
		dialer, err := proxy.FromURL(u, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		transport.Proxy = nil
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(_ context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
	}

	return &http.Client{Transport: transport}, nil
}

// Start starts receiving the updates.
//
// Args:
//   - ctx: The context for running the application.
//
// Returns:
//   - error: [ErrNotInitialized] or [ErrNoTransport] if the application cannot start.
func (app *Application) Start(ctx context.Context) error {
	if !app.initialized {
		return ErrNotInitialized
	}
	if app.bot == nil {
		return ErrNoTransport
	}

	if ctx == nil {
		ctx = context.Background()
	}
	app.context, app.cancelCtx = context.WithCancel(ctx)

	app.persistence.Runner(app.context)

	app.wg.Add(1)
	go app.poll()

	return nil
}

// poll receives the updates, restarting the long polling with a backoff when it fails.
// At most Config.Workers updates are handled at the same time.
func (app *Application) poll() {
	defer app.wg.Done()

	backoff := NewBackoff(BASE_BACKOFF_DUR, MAX_BACKOFF_DUR)
	workers := make(chan struct{}, app.Config.Workers)

	for {
		updates, err := app.bot.UpdatesViaLongPolling(app.context, &telego.GetUpdatesParams{
			Timeout:        app.Config.PollTimeout,
			AllowedUpdates: app.Config.AllowedUpdates,
		})
		if err != nil {
			log.Error().Err(err).Dur("Backoff", backoff.Duration).Msg("Failed to start long polling.")
			if backoff.Sleep(app.context) {
				return
			}
			continue
		}

		backoff.Reset()
		log.Info().Str("Username", app.username).Msg("Long polling started.")

		for update := range updates {
			select {
			case workers <- struct{}{}:
			case <-app.context.Done():
				return
			}

			app.wg.Add(1)
			go func(update telego.Update) {
				defer func() {
					<-workers
					app.wg.Done()
				}()
				app.HandleUpdate(app.context, update)
			}(update)
		}

		if app.context.Err() != nil {
			return
		}

		log.Warn().Dur("Backoff", backoff.Duration).Msg("Updates channel closed, restarting long polling.")
		if backoff.Sleep(app.context) {
			return
		}
	}
}

// Park waits for the application to stop or receive an interrupt signal.
// It returns immediately if the application was never started.
func (app *Application) Park() {
	if app.context == nil {
		return
	}

	intCh := make(chan os.Signal, 1)
	signal.Notify(intCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(intCh)

	select {
	case <-app.context.Done():
	case <-intCh:
		app.Stop()
	}
}

// Stop stops the application, waits for the running updates and saves the data.
// It is a no-op if the application is not initialized.
func (app *Application) Stop() {
	if !app.initialized {
		return
	}

	if app.cancelCtx != nil {
		app.cancelCtx()
	}
	app.wg.Wait()

	if err := app.persistence.Close(); err != nil {
		log.Error().Err(err).Msg("Persistence close error.")
	}
}

// GetContext returns the [context.Context] of the application.
//
// Returns:
//   - context.Context: The context of the application.
func (app *Application) GetContext() context.Context {
	return app.context
}

// parseCommand extracts the command and its argument from the message of the context.
// It returns false if the message is not a command or is addressed to another bot.
func (app *Application) parseCommand(c *Context) (command, rest string, ok bool) {
	if app == nil || c.Message == nil {
		return
	}

	text, found := strings.CutPrefix(c.Message.Text, app.Config.Prefix)
	if !found {
		return
	}

	head := text
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		head, rest = text[:i], strings.TrimSpace(text[i:])
	}

	command, target, addressed := strings.Cut(head, "@")
	if addressed && app.username != "" && !strings.EqualFold(target, app.username) {
		return "", "", false
	}

	return strings.ToLower(command), rest, true
}

// commands returns the commands of the registered [CommandHandler]s.
func (app *Application) commands() []string {
	var commands []string
	for _, handler := range app.eventHandlers {
		if ch, ok := handler.(*CommandHandler); ok {
			commands = append(commands, ch.Commands...)
		}
	}

	return commands
}

func (app *Application) hasCommand(command string) bool {
	return utils.Contains(app.commands(), command)
}

// SuggestCommand finds the registered command closest to the given one.
//
// Args:
//   - command: The unknown command, without the prefix.
//
// Returns:
//   - string: The closest command.
//   - bool: False if no command is close enough.
func (app *Application) SuggestCommand(command string) (string, bool) {
	best, bestDistance := "", MAX_SUGGEST_DISTANCE+1
	for _, candidate := range app.commands() {
		distance := levenshtein.DistanceForStrings([]rune(command), []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best, best != ""
}

// New creates a new instance of the [Application] with the provided configuration.
//
// Args:
//   - config: The configuration for the application, nil for the defaults.
//   - opts: The options applied to the application.
//
// Returns:
//   - *Application: A new instance of the [Application].
func New(config *Config, opts ...Option) *Application {
	if config == nil {
		config = &Config{}
	}

	app := &Application{
		eventHandlers: []Handler{},
		errorHandlers: []Handler{},
		Config:        config,
	}
	for _, opt := range opts {
		opt(app)
	}

	return app
}
