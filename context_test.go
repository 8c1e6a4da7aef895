package tgdango

import (
	"bytes"
	"context"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext_Derivation(t *testing.T) {
	chat := telego.Chat{ID: -1001, Type: telego.ChatTypeSupergroup}
	user := telego.User{ID: 7, Username: "alice"}

	tests := []struct {
		name       string
		update     telego.Update
		updateType UpdateType
		chatID     int64 // 0 means no chat
		fromID     int64 // 0 means no sender
		hasMessage bool
	}{
		{"message", telego.Update{Message: &telego.Message{MessageID: 1, Chat: chat, From: &user}}, OnMessage, -1001, 7, true},
		{"edited_message", telego.Update{EditedMessage: &telego.Message{MessageID: 1, Chat: chat, From: &user}}, OnEditedMessage, -1001, 7, false},
		{"channel_post", telego.Update{ChannelPost: &telego.Message{MessageID: 1, Chat: chat}}, OnChannelPost, -1001, 0, false},
		{"edited_channel_post", telego.Update{EditedChannelPost: &telego.Message{MessageID: 1, Chat: chat}}, OnEditedChannelPost, -1001, 0, false},
		{"callback_query", telego.Update{CallbackQuery: &telego.CallbackQuery{ID: "q", From: user, Message: &telego.Message{MessageID: 1, Chat: chat}}}, OnCallbackQuery, -1001, 7, false},
		{"callback_query inaccessible", telego.Update{CallbackQuery: &telego.CallbackQuery{ID: "q", From: user, Message: &telego.InaccessibleMessage{Chat: chat}}}, OnCallbackQuery, -1001, 7, false},
		{"callback_query inline", telego.Update{CallbackQuery: &telego.CallbackQuery{ID: "q", From: user, InlineMessageID: "i"}}, OnCallbackQuery, 0, 7, false},
		{"inline_query", telego.Update{InlineQuery: &telego.InlineQuery{ID: "q", From: user}}, OnInlineQuery, 0, 7, false},
		{"poll_answer", telego.Update{PollAnswer: &telego.PollAnswer{PollID: "p", User: &user}}, OnPollAnswer, 0, 7, false},
		{"chat_member", telego.Update{ChatMember: &telego.ChatMemberUpdated{Chat: chat, From: user}}, OnChatMember, -1001, 7, false},
		{"empty", telego.Update{}, OnUnknown, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext(context.Background(), tt.update, &fakeTransport{})

			assert.Equal(t, tt.updateType, c.UpdateType)
			assert.NotEmpty(t, c.ID)
			assert.Equal(t, tt.hasMessage, c.Message != nil)

			if tt.chatID == 0 {
				assert.Nil(t, c.Chat)
			} else {
				require.NotNil(t, c.Chat)
				assert.Equal(t, tt.chatID, c.Chat.ID)
			}

			if tt.fromID == 0 {
				assert.Nil(t, c.From)
			} else {
				require.NotNil(t, c.From)
				assert.Equal(t, tt.fromID, c.From.ID)
			}
		})
	}
}

func TestNewContext_NilParent(t *testing.T) {
	c := NewContext(nil, messageUpdate(1, 1, "hi"), &fakeTransport{}) //nolint:staticcheck
	assert.NoError(t, c.Err())

	ctx, cancel := context.WithCancel(context.Background())
	c = NewContext(ctx, messageUpdate(1, 1, "hi"), &fakeTransport{})
	cancel()
	assert.ErrorIs(t, c.Err(), context.Canceled, "the context should follow its parent")
}

func TestContext_Text(t *testing.T) {
	c := NewContext(context.Background(), messageUpdate(1, 1, "/echo hi"), &fakeTransport{})
	assert.Equal(t, "/echo hi", c.Text())

	c = NewContext(context.Background(), telego.Update{EditedMessage: &telego.Message{Caption: "a cat"}}, &fakeTransport{})
	assert.Equal(t, "a cat", c.Text())

	c = NewContext(context.Background(), telego.Update{InlineQuery: &telego.InlineQuery{Query: "q"}}, &fakeTransport{})
	assert.Empty(t, c.Text())
}

func TestContext_ChatKey(t *testing.T) {
	c := NewContext(context.Background(), messageUpdate(-1001, 1, "hi"), &fakeTransport{})
	key, ok := c.chatKey()
	assert.True(t, ok)
	assert.Equal(t, "-1001", key)

	c = NewContext(context.Background(), telego.Update{InlineQuery: &telego.InlineQuery{From: telego.User{ID: 7}}}, &fakeTransport{})
	key, ok = c.chatKey()
	assert.True(t, ok)
	assert.Equal(t, "user:7", key)

	c = NewContext(context.Background(), telego.Update{Poll: &telego.Poll{ID: "p"}}, &fakeTransport{})
	_, ok = c.chatKey()
	assert.False(t, ok)
}

func TestContext_PlainSend(t *testing.T) {
	transport := &fakeTransport{}
	c := NewContext(context.Background(), messageUpdate(42, 7, "hi"), transport)

	for _, op := range replyOps {
		require.NoError(t, op.call(c, Extra{"disable_notification": true}), op.name)

		call := transport.Last()
		assert.Equal(t, op.method, call.Method)
		assert.EqualValues(t, 42, call.ChatID)
		assert.False(t, call.Extra.Has(ExtraReplyToMessageID), "%s should not reply without the binder", op.name)
		assert.Equal(t, true, call.Extra["disable_notification"])
	}

	_, err := c.Reply("hi")
	require.NoError(t, err)
	assert.Nil(t, transport.Last().Extra, "no options should reach the transport as nil")

	_, err = c.ReplyWithMarkdown("*hi*", Extra{ExtraParseMode: ParseModeHTML})
	require.NoError(t, err)
	assert.Equal(t, Extra{ExtraParseMode: ParseModeHTML}, transport.Last().Extra, "the caller's parse mode should win")
}

func TestContext_PlainSendNoChat(t *testing.T) {
	transport := &fakeTransport{}
	c := NewContext(context.Background(), telego.Update{InlineQuery: &telego.InlineQuery{ID: "q"}}, transport)

	for _, op := range replyOps {
		assert.ErrorIs(t, op.call(c, nil), ErrCapabilityUnavailable, op.name)
	}
	assert.ErrorIs(t, c.SendChatAction(telego.ChatActionTyping), ErrCapabilityUnavailable)
	assert.Empty(t, transport.Calls())
}

func TestContext_MergesExtras(t *testing.T) {
	transport := &fakeTransport{}
	c := NewContext(context.Background(), messageUpdate(42, 7, "hi"), transport)

	_, err := c.Reply("hi", Extra{"a": 1, "b": 1}, Extra{"b": 2})
	require.NoError(t, err)
	assert.Equal(t, Extra{"a": 1, "b": 2}, transport.Last().Extra)
}

func TestContext_ReplyWithChatActionDeprecated(t *testing.T) {
	buf := captureLog(t)
	deprecated.Clear()

	transport := &fakeTransport{}
	c := NewContext(context.Background(), messageUpdate(42, 7, "hi"), transport)

	require.NoError(t, c.ReplyWithChatAction(telego.ChatActionTyping))
	require.NoError(t, c.ReplyWithChatAction(telego.ChatActionTyping))

	assert.Equal(t, []sentCall{
		{Method: "SendChatAction", ChatID: 42, Args: []any{telego.ChatActionTyping}},
		{Method: "SendChatAction", ChatID: 42, Args: []any{telego.ChatActionTyping}},
	}, transport.Calls())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("ReplyWithChatAction is deprecated")), "the warning should be logged once")
}
