package tgdango

import (
	"context"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
)

// filterContext returns the context of a message sent by username in the chat.
func filterContext(username string, chatID int64, text string) *Context {
	update := telego.Update{
		Message: &telego.Message{
			MessageID: 1,
			Chat:      telego.Chat{ID: chatID},
			From:      &telego.User{ID: 7, Username: username},
			Text:      text,
		},
	}

	return NewContext(context.Background(), update, &fakeTransport{})
}

func TestUserFilter_Check(t *testing.T) {
	filter := NewUserFilter("user1", "@User2", "user3")

	assert.True(t, filter.Check(filterContext("user1", 1, "")), "UserFilter should match user1")
	assert.True(t, filter.Check(filterContext("USER2", 1, "")), "UserFilter should ignore the case and the @")
	assert.False(t, filter.Check(filterContext("user4", 1, "")), "UserFilter should not match user4")
	assert.False(t, filter.Check(filterContext("", 1, "")), "UserFilter should not match a user without username")

	c := NewContext(context.Background(), telego.Update{Poll: &telego.Poll{ID: "p"}}, &fakeTransport{})
	assert.False(t, filter.Check(c), "UserFilter should not match an update without sender")
}

func TestUserFilter_Add_Remove(t *testing.T) {
	filter := NewUserFilter()
	filter.(*UserFilter).Add("user1")
	filter.(*UserFilter).Add("user2")

	assert.True(t, filter.Check(filterContext("user1", 1, "")), "UserFilter should match user1")
	assert.True(t, filter.Check(filterContext("user2", 1, "")), "UserFilter should match user2")

	filter.(*UserFilter).Remove("@user2")

	assert.False(t, filter.Check(filterContext("user2", 1, "")), "UserFilter should not match user2 after removal")
}

func TestChatFilter_Check(t *testing.T) {
	filter := NewChatFilter(-1001, -1002)

	assert.True(t, filter.Check(filterContext("user1", -1001, "")), "ChatFilter should match chat -1001")
	assert.False(t, filter.Check(filterContext("user1", -1003, "")), "ChatFilter should not match chat -1003")

	c := NewContext(context.Background(), telego.Update{InlineQuery: &telego.InlineQuery{ID: "q"}}, &fakeTransport{})
	assert.False(t, filter.Check(c), "ChatFilter should not match an update without chat")
}

func TestChatFilter_Add_Remove(t *testing.T) {
	filter := NewChatFilter()
	filter.(*ChatFilter).Add(-1001)

	assert.True(t, filter.Check(filterContext("user1", -1001, "")), "ChatFilter should match chat -1001")

	filter.(*ChatFilter).Remove(-1001)

	assert.False(t, filter.Check(filterContext("user1", -1001, "")), "ChatFilter should not match chat -1001 after removal")
}

func TestRegexFilter_Check(t *testing.T) {
	filter := NewRegexFilter(`^hello\b`)

	assert.True(t, filter.Check(filterContext("user1", 1, "hello world")), "RegexFilter should match the text")
	assert.False(t, filter.Check(filterContext("user1", 1, "say hello")), "RegexFilter should not match the text")
	assert.False(t, filter.Check(filterContext("user1", 1, "")), "RegexFilter should not match an empty text")

	var empty RegexFilter
	assert.False(t, empty.Check(filterContext("user1", 1, "hello")), "RegexFilter without pattern should not match")
}

func TestCombineFilter_And(t *testing.T) {
	filter := NewUserFilter("user1").And(NewChatFilter(-1001))

	assert.True(t, filter.Check(filterContext("user1", -1001, "")), "Combined filter should match")
	assert.False(t, filter.Check(filterContext("user1", -1002, "")), "Combined filter should not match another chat")
	assert.False(t, filter.Check(filterContext("user2", -1001, "")), "Combined filter should not match another user")
}

func TestCombineFilter_Or(t *testing.T) {
	filter := NewUserFilter("user1").Or(NewChatFilter(-1001))

	assert.True(t, filter.Check(filterContext("user1", -1002, "")), "Combined filter should match the user")
	assert.True(t, filter.Check(filterContext("user2", -1001, "")), "Combined filter should match the chat")
	assert.False(t, filter.Check(filterContext("user2", -1002, "")), "Combined filter should not match")
}

func TestCombineFilter_Xor(t *testing.T) {
	filter := NewUserFilter("user1").Xor(NewChatFilter(-1001))

	assert.False(t, filter.Check(filterContext("user1", -1001, "")), "Combined filter should not match both")
	assert.True(t, filter.Check(filterContext("user2", -1001, "")), "Combined filter should match one")
	assert.False(t, filter.Check(filterContext("user2", -1002, "")), "Combined filter should not match none")
}

func TestCombineFilter_Not(t *testing.T) {
	userFilter := NewUserFilter("user1")
	notFilter := userFilter.Not()

	assert.False(t, notFilter.Check(filterContext("user1", 1, "")), "NOT filter should not match user1")
	assert.True(t, notFilter.Check(filterContext("user2", 1, "")), "NOT filter should match user2")
	assert.Same(t, userFilter, notFilter.Not(), "double NOT should return the base filter")
}

func TestCombineFilter_Chain(t *testing.T) {
	// The sender is whitelisted OR the text is not spam, AND the chat is not locked.
	filter := NewUserFilter("admin").Or(NewRegexFilter(`spam`).Not()).And(NewChatFilter(-1009).Not())

	assert.True(t, filter.Check(filterContext("admin", -1001, "spam")))
	assert.True(t, filter.Check(filterContext("user1", -1001, "hello")))
	assert.False(t, filter.Check(filterContext("user1", -1001, "spam")))
	assert.False(t, filter.Check(filterContext("admin", -1009, "hello")))
}
