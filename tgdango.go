// tgdango package is a framework for writing Telegram bots on top of telego.
// Every update is turned into a [Context], passed through a chain of [Middleware]s and dispatched to [Handler]s.
//
// Key Features:
//   - Respond Operations: [Context.Reply] and its siblings send a message of a given kind to the chat of the update.
//   - Reply Linkage: the [NewReplies] middleware makes every respond operation reply to the incoming message.
//   - Handlers and Filters: commands, messages and update types, combined with composable filters.
//   - Persistence: bot and chat data kept in a gob file or an SQLite database.
//   - Metrics: Prometheus counters and histograms of the handled updates.
//
// Usage Example:
//
//	package main
//
//	import (
//	    "context"
//
//	    dango "github.com/n0h4rt/tgdango"
//	)
//
//	func main() {
//	    config, err := dango.LoadEnvConfig()
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    app := dango.New(config)
//	    app.Use(dango.NewReplies())
//
//	    app.AddHandler(dango.NewCommandHandler(func(c *dango.Context) error {
//	        _, err := c.Reply(c.Argument)
//	        return err
//	    }, nil, "echo"))
//
//	    if err = app.Initialize(); err != nil {
//	        panic(err)
//	    }
//
//	    ctx := context.Background()
//	    app.Start(ctx)
//
//	    // The `app.Park()` call is blocking, use CTRL + C to stop the application.
//	    app.Park()
//	}
package tgdango
