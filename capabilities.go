package tgdango

import "github.com/mymmrac/telego"

// capabilities is a table of the respond operations a [Context] exposes.
//
// Tables are shared by every context and never mutated after package initialization,
// so the entries must not capture per-update state beyond the context they are passed.
type capabilities struct {
	Reply               func(c *Context, text string, extra Extra) (*telego.Message, error)
	ReplyWithHTML       func(c *Context, html string, extra Extra) (*telego.Message, error)
	ReplyWithMarkdown   func(c *Context, markdown string, extra Extra) (*telego.Message, error)
	ReplyWithMarkdownV2 func(c *Context, markdown string, extra Extra) (*telego.Message, error)
	ReplyWithPhoto      func(c *Context, photo telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithAudio      func(c *Context, audio telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithDocument   func(c *Context, document telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithVideo      func(c *Context, video telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithAnimation  func(c *Context, animation telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithVideoNote  func(c *Context, videoNote telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithVoice      func(c *Context, voice telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithSticker    func(c *Context, sticker telego.InputFile, extra Extra) (*telego.Message, error)
	ReplyWithMediaGroup func(c *Context, media []telego.InputMedia, extra Extra) ([]telego.Message, error)
	ReplyWithLocation   func(c *Context, latitude, longitude float64, extra Extra) (*telego.Message, error)
	ReplyWithVenue      func(c *Context, latitude, longitude float64, title, address string, extra Extra) (*telego.Message, error)
	ReplyWithContact    func(c *Context, phoneNumber, firstName string, extra Extra) (*telego.Message, error)
	ReplyWithPoll       func(c *Context, question string, options []string, extra Extra) (*telego.Message, error)
	ReplyWithQuiz       func(c *Context, question string, options []string, extra Extra) (*telego.Message, error)
	ReplyWithDice       func(c *Context, extra Extra) (*telego.Message, error)
	ReplyWithInvoice    func(c *Context, invoice Invoice, extra Extra) (*telego.Message, error)
	ReplyWithGame       func(c *Context, gameShortName string, extra Extra) (*telego.Message, error)
	ReplyWithChatAction func(c *Context, action string, extra Extra) error
}

// sendCapabilities is installed on every new context: each operation sends a fresh
// message to the chat of the update, with the options exactly as given.
var sendCapabilities = capabilities{
	Reply: func(c *Context, text string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "Reply"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, text, extra)
	},
	ReplyWithHTML: func(c *Context, html string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithHTML"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, html, mergeExtra(Extra{ExtraParseMode: ParseModeHTML}, extra))
	},
	ReplyWithMarkdown: func(c *Context, markdown string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithMarkdown"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, markdown, mergeExtra(Extra{ExtraParseMode: ParseModeMarkdown}, extra))
	},
	ReplyWithMarkdownV2: func(c *Context, markdown string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithMarkdownV2"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMessage(c, c.Chat.ID, markdown, mergeExtra(Extra{ExtraParseMode: ParseModeMarkdownV2}, extra))
	},
	ReplyWithPhoto: func(c *Context, photo telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithPhoto"); err != nil {
			return nil, err
		}
		return c.Telegram.SendPhoto(c, c.Chat.ID, photo, extra)
	},
	ReplyWithAudio: func(c *Context, audio telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithAudio"); err != nil {
			return nil, err
		}
		return c.Telegram.SendAudio(c, c.Chat.ID, audio, extra)
	},
	ReplyWithDocument: func(c *Context, document telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithDocument"); err != nil {
			return nil, err
		}
		return c.Telegram.SendDocument(c, c.Chat.ID, document, extra)
	},
	ReplyWithVideo: func(c *Context, video telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVideo"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVideo(c, c.Chat.ID, video, extra)
	},
	ReplyWithAnimation: func(c *Context, animation telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithAnimation"); err != nil {
			return nil, err
		}
		return c.Telegram.SendAnimation(c, c.Chat.ID, animation, extra)
	},
	ReplyWithVideoNote: func(c *Context, videoNote telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVideoNote"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVideoNote(c, c.Chat.ID, videoNote, extra)
	},
	ReplyWithVoice: func(c *Context, voice telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVoice"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVoice(c, c.Chat.ID, voice, extra)
	},
	ReplyWithSticker: func(c *Context, sticker telego.InputFile, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithSticker"); err != nil {
			return nil, err
		}
		return c.Telegram.SendSticker(c, c.Chat.ID, sticker, extra)
	},
	ReplyWithMediaGroup: func(c *Context, media []telego.InputMedia, extra Extra) ([]telego.Message, error) {
		if err := assertChat(c, "ReplyWithMediaGroup"); err != nil {
			return nil, err
		}
		return c.Telegram.SendMediaGroup(c, c.Chat.ID, media, extra)
	},
	ReplyWithLocation: func(c *Context, latitude, longitude float64, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithLocation"); err != nil {
			return nil, err
		}
		return c.Telegram.SendLocation(c, c.Chat.ID, latitude, longitude, extra)
	},
	ReplyWithVenue: func(c *Context, latitude, longitude float64, title, address string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithVenue"); err != nil {
			return nil, err
		}
		return c.Telegram.SendVenue(c, c.Chat.ID, latitude, longitude, title, address, extra)
	},
	ReplyWithContact: func(c *Context, phoneNumber, firstName string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithContact"); err != nil {
			return nil, err
		}
		return c.Telegram.SendContact(c, c.Chat.ID, phoneNumber, firstName, extra)
	},
	ReplyWithPoll: func(c *Context, question string, options []string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithPoll"); err != nil {
			return nil, err
		}
		return c.Telegram.SendPoll(c, c.Chat.ID, question, options, extra)
	},
	ReplyWithQuiz: func(c *Context, question string, options []string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithQuiz"); err != nil {
			return nil, err
		}
		return c.Telegram.SendQuiz(c, c.Chat.ID, question, options, extra)
	},
	ReplyWithDice: func(c *Context, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithDice"); err != nil {
			return nil, err
		}
		return c.Telegram.SendDice(c, c.Chat.ID, extra)
	},
	ReplyWithInvoice: func(c *Context, invoice Invoice, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithInvoice"); err != nil {
			return nil, err
		}
		return c.Telegram.SendInvoice(c, c.Chat.ID, invoice, extra)
	},
	ReplyWithGame: func(c *Context, gameShortName string, extra Extra) (*telego.Message, error) {
		if err := assertChat(c, "ReplyWithGame"); err != nil {
			return nil, err
		}
		return c.Telegram.SendGame(c, c.Chat.ID, gameShortName, extra)
	},
	ReplyWithChatAction: func(c *Context, action string, extra Extra) error {
		deprecate("ReplyWithChatAction", "REPLY_WITH_CHAT_ACTION", "SendChatAction", "")
		return c.SendChatAction(action, extra)
	},
}
