package tgdango

import "github.com/mymmrac/telego"

// NewReplies returns a middleware that makes every respond operation of the context reply
// to the message that triggered the update, instead of sending a new one.
//
// The middleware only swaps the capability table of the context and calls next. Whether a
// capability can run is decided when it is invoked:
//   - Without a chat, the operation fails with a [*CapabilityError] before any call is made.
//   - Without an inbound message, the operation falls back to a plain send.
//   - With a message, "reply_to_message_id" is set to its ID unless the caller already set
//     "reply_to_message_id" or "reply_parameters".
//
// [Context.ReplyWithChatAction] always fails with a [*RemovedError], use [Context.SendChatAction].
//
// Example:
//
//	app.Use(tgdango.NewReplies())
//	app.AddHandler(tgdango.NewCommandHandler(func(c *tgdango.Context) error {
//	    _, err := c.Reply("pong")
//	    return err
//	}, nil, "ping"))
func NewReplies() Middleware {
	return func(c *Context, next NextFunc) error {
		c.caps = &replyCapabilities
		return next()
	}
}

// makeReply returns a copy of extra carrying the reply linkage to the current message.
// Linkage given by the caller is never overwritten.
func makeReply(c *Context, extra Extra) Extra {
	ret := mergeExtra(extra)
	if ret == nil {
		ret = Extra{}
	}
	if c.Message == nil || ret.Has(ExtraReplyToMessageID) || ret.Has(ExtraReplyParameters) {
		return ret
	}
	ret[ExtraReplyToMessageID] = c.Message.MessageID

	return ret
}

// makeFormatted builds the options of the formatting replies: the parse mode and the reply
// linkage first, then the caller's options on top.
func makeFormatted(c *Context, parseMode string, extra Extra) Extra {
	ret := Extra{ExtraParseMode: parseMode}
	if c.Message != nil {
		ret[ExtraReplyToMessageID] = c.Message.MessageID
	}
	if extra.Has(ExtraReplyParameters) {
		delete(ret, ExtraReplyToMessageID)
	}

	return mergeExtra(ret, extra)
}

var replyCapabilities = capabilities{
	Reply: func(c *Context, text string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "Reply"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, text, makeReply(c, extra))
	},
	ReplyWithHTML: func(c *Context, html string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithHTML"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, html, makeFormatted(c, ParseModeHTML, extra))
	},
	ReplyWithMarkdown: func(c *Context, markdown string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithMarkdown"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, markdown, makeFormatted(c, ParseModeMarkdown, extra))
	},
	ReplyWithMarkdownV2: func(c *Context, markdown string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithMarkdownV2"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, markdown, makeFormatted(c, ParseModeMarkdownV2, extra))
	},
	ReplyWithPhoto: func(c *Context, photo telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithPhoto"); err != nil {
			return nil, err
		}
		return c.Telegram.SendPhoto(c, c.Chat.ID, photo, makeReply(c, extra))
	},
	ReplyWithAudio: func(c *Context, audio telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithAudio"); err != nil {
			return nil, err
		}
		return c.Telegram.SendAudio(c, c.Chat.ID, audio, makeReply(c, extra))
	},
	ReplyWithDocument: func(c *Context, document telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithDocument"); err != nil {
			return nil, err
		}
		return c.Telegram.SendDocument(c, c.Chat.ID, document, makeReply(c, extra))
	},
	ReplyWithVideo: func(c *Context, video telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVideo"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVideo(c, c.Chat.ID, video, makeReply(c, extra))
	},
	ReplyWithAnimation: func(c *Context, animation telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithAnimation"); err != nil {
			return nil, err
		}
		return c.Telegram.SendAnimation(c, c.Chat.ID, animation, makeReply(c, extra))
	},
	ReplyWithVideoNote: func(c *Context, videoNote telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVideoNote"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVideoNote(c, c.Chat.ID, videoNote, makeReply(c, extra))
	},
	ReplyWithVoice: func(c *Context, voice telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVoice"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVoice(c, c.Chat.ID, voice, makeReply(c, extra))
	},
	ReplyWithSticker: func(c *Context, sticker telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithSticker"); err != nil {
			return nil, err
		}
		return c.Telegram.SendSticker(c, c.Chat.ID, sticker, makeReply(c, extra))
	},
	ReplyWithMediaGroup: func(c *Context, media []telego.InputMedia, extra Extra) ([]telego.Message, error) {
		if err := assertChat(c, "ReplyWithMediaGroup"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMediaGroup(c, c.Chat.ID, media, makeReply(c, extra))
	},
	ReplyWithLocation: func(c *Context, latitude, longitude float64, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithLocation"); err != nil {
			return nil, err
		}
		return c.Telegram.SendLocation(c, c.Chat.ID, latitude, longitude, makeReply(c, extra))
	},
	ReplyWithVenue: func(c *Context, latitude, longitude float64, title, address string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVenue"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVenue(c, c.Chat.ID, latitude, longitude, title, address, makeReply(c, extra))
	},
	ReplyWithContact: func(c *Context, phoneNumber, firstName string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithContact"); err != nil {
			return nil, err
		}
		return c.Telegram.SendContact(c, c.Chat.ID, phoneNumber, firstName, makeReply(c, extra))
	},
	ReplyWithPoll: func(c *Context, question string, options []string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithPoll"); err != nil {
			return nil, err
		}
		return c.Telegram.SendPoll(c, c.Chat.ID, question, options, makeReply(c, extra))
	},
	ReplyWithQuiz: func(c *Context, question string, options []string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithQuiz"); err != nil {
			return nil, err
		}
		return c.Telegram.SendQuiz(c, c.Chat.ID, question, options, makeReply(c, extra))
	},
	ReplyWithDice: func(c *Context, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithDice"); err != nil {
			return nil, err
		}
		return c.Telegram.SendDice(c, c.Chat.ID, makeReply(c, extra))
	},
	ReplyWithInvoice: func(c *Context, invoice Invoice, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithInvoice"); err != nil {
			return nil, err
		}
		return c.Telegram.SendInvoice(c, c.Chat.ID, invoice, makeReply(c, extra))
	},
	ReplyWithGame: func(c *Context, gameShortName string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithGame"); err != nil {
			return nil, err
		}
		return c.Telegram.SendGame(c, c.Chat.ID, gameShortName, makeReply(c, extra))
	},
	ReplyWithChatAction: func(*Context, string, Extra) error {
		return &RemovedError{Method: "ReplyWithChatAction", Use: "SendChatAction"}
	},
}
