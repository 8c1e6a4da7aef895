package tgdango

import (
	"context"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// TelegoBot abstracts the telego.Bot methods used by [TelegoTransport],
// enabling fake-based testing without a live Telegram API connection.
type TelegoBot interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	SendPhoto(ctx context.Context, params *telego.SendPhotoParams) (*telego.Message, error)
	SendAudio(ctx context.Context, params *telego.SendAudioParams) (*telego.Message, error)
	SendDocument(ctx context.Context, params *telego.SendDocumentParams) (*telego.Message, error)
	SendVideo(ctx context.Context, params *telego.SendVideoParams) (*telego.Message, error)
	SendAnimation(ctx context.Context, params *telego.SendAnimationParams) (*telego.Message, error)
	SendVideoNote(ctx context.Context, params *telego.SendVideoNoteParams) (*telego.Message, error)
	SendVoice(ctx context.Context, params *telego.SendVoiceParams) (*telego.Message, error)
	SendSticker(ctx context.Context, params *telego.SendStickerParams) (*telego.Message, error)
	SendMediaGroup(ctx context.Context, params *telego.SendMediaGroupParams) ([]telego.Message, error)
	SendLocation(ctx context.Context, params *telego.SendLocationParams) (*telego.Message, error)
	SendVenue(ctx context.Context, params *telego.SendVenueParams) (*telego.Message, error)
	SendContact(ctx context.Context, params *telego.SendContactParams) (*telego.Message, error)
	SendPoll(ctx context.Context, params *telego.SendPollParams) (*telego.Message, error)
	SendDice(ctx context.Context, params *telego.SendDiceParams) (*telego.Message, error)
	SendInvoice(ctx context.Context, params *telego.SendInvoiceParams) (*telego.Message, error)
	SendGame(ctx context.Context, params *telego.SendGameParams) (*telego.Message, error)
	SendChatAction(ctx context.Context, params *telego.SendChatActionParams) error
}

// TelegoTransport is the [Transport] backed by a telego bot.
//
// The options of every call are applied onto the telego params struct:
//   - "reply_to_message_id" becomes [telego.ReplyParameters], unless "reply_parameters" is given.
//   - "reply_markup" must hold a [telego.ReplyMarkup] value.
//   - Every other key is decoded by its JSON field name.
//
// Errors returned by telego are passed through unchanged.
type TelegoTransport struct {
	bot TelegoBot
}

// NewTelegoTransport returns a [TelegoTransport] sending through the given bot.
func NewTelegoTransport(bot TelegoBot) *TelegoTransport {
	return &TelegoTransport{bot: bot}
}

// prepare decodes the plain options onto params and extracts the reply markup.
func prepare(extra Extra, params any) (telego.ReplyMarkup, error) {
	if err := extra.decode(params); err != nil {
		return nil, err
	}

	return extra.replyMarkup()
}

func (t *TelegoTransport) SendMessage(ctx context.Context, chatID int64, text string, extra Extra) (*telego.Message, error) {
	params := &telego.SendMessageParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Text = text
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendMessage(ctx, params)
}

func (t *TelegoTransport) SendPhoto(ctx context.Context, chatID int64, photo telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendPhotoParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Photo = photo
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendPhoto(ctx, params)
}

func (t *TelegoTransport) SendAudio(ctx context.Context, chatID int64, audio telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendAudioParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Audio = audio
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendAudio(ctx, params)
}

func (t *TelegoTransport) SendDocument(ctx context.Context, chatID int64, document telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendDocumentParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Document = document
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendDocument(ctx, params)
}

func (t *TelegoTransport) SendVideo(ctx context.Context, chatID int64, video telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendVideoParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Video = video
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendVideo(ctx, params)
}

func (t *TelegoTransport) SendAnimation(ctx context.Context, chatID int64, animation telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendAnimationParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Animation = animation
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendAnimation(ctx, params)
}

func (t *TelegoTransport) SendVideoNote(ctx context.Context, chatID int64, videoNote telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendVideoNoteParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.VideoNote = videoNote
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendVideoNote(ctx, params)
}

func (t *TelegoTransport) SendVoice(ctx context.Context, chatID int64, voice telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendVoiceParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Voice = voice
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendVoice(ctx, params)
}

func (t *TelegoTransport) SendSticker(ctx context.Context, chatID int64, sticker telego.InputFile, extra Extra) (*telego.Message, error) {
	params := &telego.SendStickerParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Sticker = sticker
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendSticker(ctx, params)
}

// SendMediaGroup sends an album. Media groups take no reply markup.
func (t *TelegoTransport) SendMediaGroup(ctx context.Context, chatID int64, media []telego.InputMedia, extra Extra) ([]telego.Message, error) {
	params := &telego.SendMediaGroupParams{}
	if err := extra.decode(params); err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Media = media
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)

	return t.bot.SendMediaGroup(ctx, params)
}

func (t *TelegoTransport) SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, extra Extra) (*telego.Message, error) {
	params := &telego.SendLocationParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Latitude = latitude
	params.Longitude = longitude
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendLocation(ctx, params)
}

func (t *TelegoTransport) SendVenue(ctx context.Context, chatID int64, latitude, longitude float64, title, address string, extra Extra) (*telego.Message, error) {
	params := &telego.SendVenueParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Latitude = latitude
	params.Longitude = longitude
	params.Title = title
	params.Address = address
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendVenue(ctx, params)
}

func (t *TelegoTransport) SendContact(ctx context.Context, chatID int64, phoneNumber, firstName string, extra Extra) (*telego.Message, error) {
	params := &telego.SendContactParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.PhoneNumber = phoneNumber
	params.FirstName = firstName
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendContact(ctx, params)
}

func (t *TelegoTransport) SendPoll(ctx context.Context, chatID int64, question string, options []string, extra Extra) (*telego.Message, error) {
	params := &telego.SendPollParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Question = question
	params.Options = pollOptions(options)
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendPoll(ctx, params)
}

// SendQuiz sends a poll of type "quiz". The correct answer goes in "correct_option_id".
func (t *TelegoTransport) SendQuiz(ctx context.Context, chatID int64, question string, options []string, extra Extra) (*telego.Message, error) {
	params := &telego.SendPollParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Question = question
	params.Options = pollOptions(options)
	params.Type = "quiz"
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendPoll(ctx, params)
}

func (t *TelegoTransport) SendDice(ctx context.Context, chatID int64, extra Extra) (*telego.Message, error) {
	params := &telego.SendDiceParams{}
	markup, err := prepare(extra, params)
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = markup

	return t.bot.SendDice(ctx, params)
}

func (t *TelegoTransport) SendInvoice(ctx context.Context, chatID int64, invoice Invoice, extra Extra) (*telego.Message, error) {
	params := &telego.SendInvoiceParams{}
	if err := extra.decode(params); err != nil {
		return nil, err
	}
	keyboard, err := extra.inlineKeyboard()
	if err != nil {
		return nil, err
	}
	params.ChatID = tu.ID(chatID)
	params.Title = invoice.Title
	params.Description = invoice.Description
	params.Payload = invoice.Payload
	params.ProviderToken = invoice.ProviderToken
	params.Currency = invoice.Currency
	params.Prices = invoice.Prices
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = keyboard

	return t.bot.SendInvoice(ctx, params)
}

func (t *TelegoTransport) SendGame(ctx context.Context, chatID int64, gameShortName string, extra Extra) (*telego.Message, error) {
	params := &telego.SendGameParams{}
	if err := extra.decode(params); err != nil {
		return nil, err
	}
	keyboard, err := extra.inlineKeyboard()
	if err != nil {
		return nil, err
	}
	params.ChatID = chatID
	params.GameShortName = gameShortName
	params.ReplyParameters = extra.replyParameters(params.ReplyParameters)
	params.ReplyMarkup = keyboard

	return t.bot.SendGame(ctx, params)
}

func (t *TelegoTransport) SendChatAction(ctx context.Context, chatID int64, action string, extra Extra) error {
	params := &telego.SendChatActionParams{}
	if err := extra.decode(params); err != nil {
		return err
	}
	params.ChatID = tu.ID(chatID)
	params.Action = action

	return t.bot.SendChatAction(ctx, params)
}

func pollOptions(options []string) []telego.InputPollOption {
	out := make([]telego.InputPollOption, 0, len(options))
	for _, option := range options {
		out = append(out, telego.InputPollOption{Text: option})
	}

	return out
}
