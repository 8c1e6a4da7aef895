package tgdango

import (
	"context"

	"github.com/mymmrac/telego"
)

// Transport performs the outgoing Bot API calls, one method per kind of message.
//
// The capabilities of a [Context] delegate to it, passing the chat ID, the domain arguments
// unchanged and the options. Implementations own retries and rate limits, if any.
type Transport interface {
	SendMessage(ctx context.Context, chatID int64, text string, extra Extra) (*telego.Message, error)
	SendPhoto(ctx context.Context, chatID int64, photo telego.InputFile, extra Extra) (*telego.Message, error)
	SendAudio(ctx context.Context, chatID int64, audio telego.InputFile, extra Extra) (*telego.Message, error)
	SendDocument(ctx context.Context, chatID int64, document telego.InputFile, extra Extra) (*telego.Message, error)
	SendVideo(ctx context.Context, chatID int64, video telego.InputFile, extra Extra) (*telego.Message, error)
	SendAnimation(ctx context.Context, chatID int64, animation telego.InputFile, extra Extra) (*telego.Message, error)
	SendVideoNote(ctx context.Context, chatID int64, videoNote telego.InputFile, extra Extra) (*telego.Message, error)
	SendVoice(ctx context.Context, chatID int64, voice telego.InputFile, extra Extra) (*telego.Message, error)
	SendSticker(ctx context.Context, chatID int64, sticker telego.InputFile, extra Extra) (*telego.Message, error)
	SendMediaGroup(ctx context.Context, chatID int64, media []telego.InputMedia, extra Extra) ([]telego.Message, error)
	SendLocation(ctx context.Context, chatID int64, latitude, longitude float64, extra Extra) (*telego.Message, error)
	SendVenue(ctx context.Context, chatID int64, latitude, longitude float64, title, address string, extra Extra) (*telego.Message, error)
	SendContact(ctx context.Context, chatID int64, phoneNumber, firstName string, extra Extra) (*telego.Message, error)
	SendPoll(ctx context.Context, chatID int64, question string, options []string, extra Extra) (*telego.Message, error)
	SendQuiz(ctx context.Context, chatID int64, question string, options []string, extra Extra) (*telego.Message, error)
	SendDice(ctx context.Context, chatID int64, extra Extra) (*telego.Message, error)
	SendInvoice(ctx context.Context, chatID int64, invoice Invoice, extra Extra) (*telego.Message, error)
	SendGame(ctx context.Context, chatID int64, gameShortName string, extra Extra) (*telego.Message, error)
	SendChatAction(ctx context.Context, chatID int64, action string, extra Extra) error
}

// Invoice describes the product of an invoice message.
type Invoice struct {
	Title         string                `json:"title"`          // Title is the product name.
	Description   string                `json:"description"`    // Description is the product description.
	Payload       string                `json:"payload"`        // Payload is bot-defined and not shown to the user.
	ProviderToken string                `json:"provider_token"` // ProviderToken is empty for payments in Telegram Stars.
	Currency      string                `json:"currency"`       // Currency is a three-letter ISO 4217 code.
	Prices        []telego.LabeledPrice `json:"prices"`         // Prices is the price breakdown.
}
