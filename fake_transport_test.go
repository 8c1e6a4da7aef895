package tgdango

import (
	"context"
	"sync"

	"github.com/mymmrac/telego"
)

// sentCall is one call recorded by fakeTransport.
type sentCall struct {
	Method string
	ChatID int64
	Args   []any
	Extra  Extra
}

// fakeTransport records the calls and answers with incrementing message IDs.
type fakeTransport struct {
	mu    sync.Mutex
	calls []sentCall
	err   error
	next  int
}

func (f *fakeTransport) record(method string, chatID int64, extra Extra, args ...any) (*telego.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, sentCall{Method: method, ChatID: chatID, Args: args, Extra: extra})
	if f.err != nil {
		return nil, f.err
	}
	f.next++

	return &telego.Message{MessageID: f.next, Chat: telego.Chat{ID: chatID}}, nil
}

func (f *fakeTransport) Calls() []sentCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]sentCall(nil), f.calls...)
}

func (f *fakeTransport) Last() sentCall {
	calls := f.Calls()
	if len(calls) == 0 {
		return sentCall{}
	}

	return calls[len(calls)-1]
}

func (f *fakeTransport) SendMessage(_ context.Context, chatID int64, text string, extra Extra) (*telego.Message, error) {
	return f.record("SendMessage", chatID, extra, text)
}

func (f *fakeTransport) SendPhoto(_ context.Context, chatID int64, photo telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendPhoto", chatID, extra, photo)
}

func (f *fakeTransport) SendAudio(_ context.Context, chatID int64, audio telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendAudio", chatID, extra, audio)
}

func (f *fakeTransport) SendDocument(_ context.Context, chatID int64, document telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendDocument", chatID, extra, document)
}

func (f *fakeTransport) SendVideo(_ context.Context, chatID int64, video telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendVideo", chatID, extra, video)
}

func (f *fakeTransport) SendAnimation(_ context.Context, chatID int64, animation telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendAnimation", chatID, extra, animation)
}

func (f *fakeTransport) SendVideoNote(_ context.Context, chatID int64, videoNote telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendVideoNote", chatID, extra, videoNote)
}

func (f *fakeTransport) SendVoice(_ context.Context, chatID int64, voice telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendVoice", chatID, extra, voice)
}

func (f *fakeTransport) SendSticker(_ context.Context, chatID int64, sticker telego.InputFile, extra Extra) (*telego.Message, error) {
	return f.record("SendSticker", chatID, extra, sticker)
}

func (f *fakeTransport) SendMediaGroup(_ context.Context, chatID int64, media []telego.InputMedia, extra Extra) ([]telego.Message, error) {
	msg, err := f.record("SendMediaGroup", chatID, extra, media)
	if err != nil {
		return nil, err
	}

	return []telego.Message{*msg}, nil
}

func (f *fakeTransport) SendLocation(_ context.Context, chatID int64, latitude, longitude float64, extra Extra) (*telego.Message, error) {
	return f.record("SendLocation", chatID, extra, latitude, longitude)
}

func (f *fakeTransport) SendVenue(_ context.Context, chatID int64, latitude, longitude float64, title, address string, extra Extra) (*telego.Message, error) {
	return f.record("SendVenue", chatID, extra, latitude, longitude, title, address)
}

func (f *fakeTransport) SendContact(_ context.Context, chatID int64, phoneNumber, firstName string, extra Extra) (*telego.Message, error) {
	return f.record("SendContact", chatID, extra, phoneNumber, firstName)
}

func (f *fakeTransport) SendPoll(_ context.Context, chatID int64, question string, options []string, extra Extra) (*telego.Message, error) {
	return f.record("SendPoll", chatID, extra, question, options)
}

func (f *fakeTransport) SendQuiz(_ context.Context, chatID int64, question string, options []string, extra Extra) (*telego.Message, error) {
	return f.record("SendQuiz", chatID, extra, question, options)
}

func (f *fakeTransport) SendDice(_ context.Context, chatID int64, extra Extra) (*telego.Message, error) {
	return f.record("SendDice", chatID, extra)
}

func (f *fakeTransport) SendInvoice(_ context.Context, chatID int64, invoice Invoice, extra Extra) (*telego.Message, error) {
	return f.record("SendInvoice", chatID, extra, invoice)
}

func (f *fakeTransport) SendGame(_ context.Context, chatID int64, gameShortName string, extra Extra) (*telego.Message, error) {
	return f.record("SendGame", chatID, extra, gameShortName)
}

func (f *fakeTransport) SendChatAction(_ context.Context, chatID int64, action string, extra Extra) error {
	_, err := f.record("SendChatAction", chatID, extra, action)
	return err
}

// messageUpdate returns a "message" update in a group chat.
func messageUpdate(chatID int64, messageID int, text string) telego.Update {
	return telego.Update{
		UpdateID: messageID,
		Message: &telego.Message{
			MessageID: messageID,
			Chat:      telego.Chat{ID: chatID, Type: telego.ChatTypeSupergroup},
			From:      &telego.User{ID: 7, FirstName: "Alice", Username: "alice"},
			Text:      text,
		},
	}
}
