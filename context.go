package tgdango

import (
	"context"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
)

// Responder is the set of respond operations exposed to handlers, implemented by [*Context].
type Responder interface {
	Reply(text string, extra ...Extra) (*telego.Message, error)
	ReplyWithHTML(html string, extra ...Extra) (*telego.Message, error)
	ReplyWithMarkdown(markdown string, extra ...Extra) (*telego.Message, error)
	ReplyWithMarkdownV2(markdown string, extra ...Extra) (*telego.Message, error)
	ReplyWithPhoto(photo telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithAudio(audio telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithDocument(document telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithVideo(video telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithAnimation(animation telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithVideoNote(videoNote telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithVoice(voice telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithSticker(sticker telego.InputFile, extra ...Extra) (*telego.Message, error)
	ReplyWithMediaGroup(media []telego.InputMedia, extra ...Extra) ([]telego.Message, error)
	ReplyWithLocation(latitude, longitude float64, extra ...Extra) (*telego.Message, error)
	ReplyWithVenue(latitude, longitude float64, title, address string, extra ...Extra) (*telego.Message, error)
	ReplyWithContact(phoneNumber, firstName string, extra ...Extra) (*telego.Message, error)
	ReplyWithPoll(question string, options []string, extra ...Extra) (*telego.Message, error)
	ReplyWithQuiz(question string, options []string, extra ...Extra) (*telego.Message, error)
	ReplyWithDice(extra ...Extra) (*telego.Message, error)
	ReplyWithInvoice(invoice Invoice, extra ...Extra) (*telego.Message, error)
	ReplyWithGame(gameShortName string, extra ...Extra) (*telego.Message, error)
	ReplyWithChatAction(action string, extra ...Extra) error
	SendChatAction(action string, extra ...Extra) error
}

var _ Responder = (*Context)(nil)

// Context represents the context of a single update.
//
// It is created once per update, threaded through the middleware chain and the handlers,
// and dropped afterwards. It implements [context.Context], so it can be passed to any call
// that should be cancelled together with the update.
type Context struct {
	context.Context

	ID         string                // ID identifies the update in log lines.
	UpdateType UpdateType            // UpdateType is the kind of the update.
	Update     telego.Update         // Update is the raw update.
	Chat       *telego.Chat          // Chat is the chat the update happened in, if any.
	Message    *telego.Message       // Message is the incoming message of a "message" update.
	From       *telego.User          // From is the user who caused the update, if known.
	Telegram   Transport             // Telegram performs the outgoing calls.
	App        *Application          // App is the application that dispatched the update.
	ChatData   *SyncMap[string, any] // ChatData stores data specific to the chat.
	BotData    *SyncMap[string, any] // BotData stores data specific to the bot.

	Command      string   // Command is the matched command, set by [CommandHandler].
	WithArgument bool     // WithArgument indicates if the command has an argument.
	Argument     string   // Argument is the raw text after the command.
	Arguments    []string // Arguments are the fields of Argument.

	Error error // Error is the error being handled, set for error handlers.

	caps *capabilities
}

// NewContext builds the context of an update.
//
// Args:
//   - ctx: The parent context, cancelled when the update should stop being processed.
//   - update: The incoming update.
//   - transport: The transport used by the respond operations.
//
// Returns:
//   - *Context: The new context, exposing the plain send capabilities.
func NewContext(ctx context.Context, update telego.Update, transport Transport) *Context {
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Context{
		Context:    ctx,
		ID:         uuid.NewString(),
		UpdateType: updateTypeOf(update),
		Update:     update,
		Message:    update.Message,
		Telegram:   transport,
		caps:       &sendCapabilities,
	}
	c.Chat, c.From = chatAndSender(update)

	return c
}

// chatAndSender finds the chat and the user of an update.
func chatAndSender(update telego.Update) (chat *telego.Chat, from *telego.User) {
	for _, msg := range []*telego.Message{update.Message, update.EditedMessage, update.ChannelPost, update.EditedChannelPost} {
		if msg != nil {
			return &msg.Chat, msg.From
		}
	}

	switch {
	case update.CallbackQuery != nil:
		from = &update.CallbackQuery.From
		switch msg := update.CallbackQuery.Message.(type) {
		case *telego.Message:
			if msg != nil {
				chat = &msg.Chat
			}
		case *telego.InaccessibleMessage:
			if msg != nil {
				chat = &msg.Chat
			}
		}
	case update.InlineQuery != nil:
		from = &update.InlineQuery.From
	case update.ChosenInlineResult != nil:
		from = &update.ChosenInlineResult.From
	case update.ShippingQuery != nil:
		from = &update.ShippingQuery.From
	case update.PreCheckoutQuery != nil:
		from = &update.PreCheckoutQuery.From
	case update.PollAnswer != nil:
		from = update.PollAnswer.User
	case update.MyChatMember != nil:
		chat, from = &update.MyChatMember.Chat, &update.MyChatMember.From
	case update.ChatMember != nil:
		chat, from = &update.ChatMember.Chat, &update.ChatMember.From
	case update.ChatJoinRequest != nil:
		chat, from = &update.ChatJoinRequest.Chat, &update.ChatJoinRequest.From
	}

	return
}

// Text returns the text or the caption of the message carried by the update.
func (c *Context) Text() string {
	for _, msg := range []*telego.Message{c.Update.Message, c.Update.EditedMessage, c.Update.ChannelPost, c.Update.EditedChannelPost} {
		if msg == nil {
			continue
		}
		if msg.Text != "" {
			return msg.Text
		}
		return msg.Caption
	}

	return ""
}

// chatKey returns the key of the chat data of this context, or false if there is no chat nor user.
func (c *Context) chatKey() (string, bool) {
	switch {
	case c.Chat != nil:
		return formatID(c.Chat.ID), true
	case c.From != nil:
		return "user:" + formatID(c.From.ID), true
	default:
		return "", false
	}
}

// Reply sends a text message.
func (c *Context) Reply(text string, extra ...Extra) (*telego.Message, error) {
	return c.caps.Reply(c, text, mergeExtra(extra...))
}

// ReplyWithHTML sends a text message formatted as HTML.
func (c *Context) ReplyWithHTML(html string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithHTML(c, html, mergeExtra(extra...))
}

// ReplyWithMarkdown sends a text message formatted as legacy Markdown.
func (c *Context) ReplyWithMarkdown(markdown string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithMarkdown(c, markdown, mergeExtra(extra...))
}

// ReplyWithMarkdownV2 sends a text message formatted as MarkdownV2.
func (c *Context) ReplyWithMarkdownV2(markdown string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithMarkdownV2(c, markdown, mergeExtra(extra...))
}

// ReplyWithPhoto sends a photo by file ID, URL or upload.
func (c *Context) ReplyWithPhoto(photo telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithPhoto(c, photo, mergeExtra(extra...))
}

// ReplyWithAudio sends an audio file to be shown in the music player.
func (c *Context) ReplyWithAudio(audio telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithAudio(c, audio, mergeExtra(extra...))
}

// ReplyWithDocument sends a general file.
func (c *Context) ReplyWithDocument(document telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithDocument(c, document, mergeExtra(extra...))
}

// ReplyWithVideo sends a video.
func (c *Context) ReplyWithVideo(video telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithVideo(c, video, mergeExtra(extra...))
}

// ReplyWithAnimation sends a GIF or an H.264 video without sound.
func (c *Context) ReplyWithAnimation(animation telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithAnimation(c, animation, mergeExtra(extra...))
}

// ReplyWithVideoNote sends a rounded square video message.
func (c *Context) ReplyWithVideoNote(videoNote telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithVideoNote(c, videoNote, mergeExtra(extra...))
}

// ReplyWithVoice sends a voice message.
func (c *Context) ReplyWithVoice(voice telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithVoice(c, voice, mergeExtra(extra...))
}

// ReplyWithSticker sends a static, animated or video sticker.
func (c *Context) ReplyWithSticker(sticker telego.InputFile, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithSticker(c, sticker, mergeExtra(extra...))
}

// ReplyWithMediaGroup sends an album of photos, videos, documents or audios.
func (c *Context) ReplyWithMediaGroup(media []telego.InputMedia, extra ...Extra) ([]telego.Message, error) {
	return c.caps.ReplyWithMediaGroup(c, media, mergeExtra(extra...))
}

// ReplyWithLocation sends a point on the map.
func (c *Context) ReplyWithLocation(latitude, longitude float64, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithLocation(c, latitude, longitude, mergeExtra(extra...))
}

// ReplyWithVenue sends information about a venue.
//
// Args:
//   - latitude, longitude: The location of the venue.
//   - title: The name of the venue.
//   - address: The address of the venue.
//   - extra: Optional send options, merged left to right.
//
// Returns:
//   - *telego.Message: The sent message.
//   - error: A [*CapabilityError] if the update has no chat, or the transport error.
func (c *Context) ReplyWithVenue(latitude, longitude float64, title, address string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithVenue(c, latitude, longitude, title, address, mergeExtra(extra...))
}

// ReplyWithContact sends a phone contact.
func (c *Context) ReplyWithContact(phoneNumber, firstName string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithContact(c, phoneNumber, firstName, mergeExtra(extra...))
}

// ReplyWithPoll sends a regular poll.
//
// Args:
//   - question: The poll question.
//   - options: The answer options, in order.
//   - extra: Optional send options, e.g. "is_anonymous".
//
// Returns:
//   - *telego.Message: The sent message.
//   - error: A [*CapabilityError] if the update has no chat, or the transport error.
func (c *Context) ReplyWithPoll(question string, options []string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithPoll(c, question, options, mergeExtra(extra...))
}

// ReplyWithQuiz sends a quiz poll. Set "correct_option_id" in extra.
func (c *Context) ReplyWithQuiz(question string, options []string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithQuiz(c, question, options, mergeExtra(extra...))
}

// ReplyWithDice sends an animated emoji with a random value. Set "emoji" in extra to pick it.
func (c *Context) ReplyWithDice(extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithDice(c, mergeExtra(extra...))
}

// ReplyWithInvoice sends an invoice for a payment.
func (c *Context) ReplyWithInvoice(invoice Invoice, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithInvoice(c, invoice, mergeExtra(extra...))
}

// ReplyWithGame sends a game by its short name.
func (c *Context) ReplyWithGame(gameShortName string, extra ...Extra) (*telego.Message, error) {
	return c.caps.ReplyWithGame(c, gameShortName, mergeExtra(extra...))
}

// ReplyWithChatAction is deprecated: use [Context.SendChatAction].
// Once [NewReplies] is in the chain it always fails with a [*RemovedError].
func (c *Context) ReplyWithChatAction(action string, extra ...Extra) error {
	return c.caps.ReplyWithChatAction(c, action, mergeExtra(extra...))
}

// SendChatAction tells the chat that something is happening on the bot's side,
// e.g. [telego.ChatActionTyping].
func (c *Context) SendChatAction(action string, extra ...Extra) error {
	if err := assertChat(c, "SendChatAction"); err != nil {
		return err
	}

	return c.Telegram.SendChatAction(c, c.Chat.ID, action, mergeExtra(extra...))
}
