package tgdango

import (
	"regexp"
	"strings"

	"github.com/n0h4rt/tgdango/utils"
)

// This approach aims to simplify the syntax of combining filters.
// For example:
//   filter := Filter.And(Filter.And(Filter)).Or(Filter.Not())
// Instead of:
//   filter := Or(And(Filter, And(Filter, Filter)), Not(Filter)) (excluding the package name)
//
// Since Go does not support type inheritance nor method declaration with multiple receivers,
// everything needs to be explicitly declared.

// Filter is an interface that defines the methods for filtering updates.
type Filter interface {
	Check(*Context) bool // Check evaluates if the given context passes the filter conditions.
	And(Filter) Filter   // And returns a new filter that combines the current filter with another using logical AND.
	Or(Filter) Filter    // Or returns a new filter that combines the current filter with another using logical OR.
	Xor(Filter) Filter   // Xor returns a new filter that combines the current filter with another using logical XOR.
	Not() Filter         // Not returns a new filter that negates the current filter using logical NOT.
}

const (
	// CombineFilterAnd combines filter using logical AND.
	CombineFilterAnd int = iota
	// CombineFilterOr combines filter using logical OR.
	CombineFilterOr
	// CombineFilterXor combines filter using logical XOR.
	CombineFilterXor
)

// CombineFilter is a struct that represents the combination of two filters.
type CombineFilter struct {
	Left  Filter // Left represents the first filter to be combined.
	Right Filter // Right represents the second filter to be combined.
	Mode  int    // Mode specifies the combination mode: 0 for AND, 1 for OR, and 2 for XOR.
}

// Check combines the results of the left and right filters according to the mode.
func (f *CombineFilter) Check(c *Context) bool {
	switch f.Mode {
	case CombineFilterAnd:
		return f.Left.Check(c) && f.Right.Check(c)
	case CombineFilterOr:
		return f.Left.Check(c) || f.Right.Check(c)
	case CombineFilterXor:
		return f.Left.Check(c) != f.Right.Check(c)
	default:
		return false
	}
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *CombineFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *CombineFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *CombineFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *CombineFilter) Not() Filter {
	return &NotFilter{f}
}

// NotFilter is a struct that represents the logical NOT of a filter.
type NotFilter struct {
	Base Filter // Base represents the filter to be negated using logical NOT.
}

// Check returns the logical negation of the filter's result.
func (f *NotFilter) Check(c *Context) bool {
	return !f.Base.Check(c)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *NotFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *NotFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *NotFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns the base filter.
func (f *NotFilter) Not() Filter {
	return f.Base
}

// UserFilter represents a filter for users, by username.
type UserFilter struct {
	Users []string // Users is a list of lowercase usernames, without "@".
}

// Check checks if the sender's username is in the filter's list of users.
func (f *UserFilter) Check(c *Context) bool {
	if c.From == nil || c.From.Username == "" {
		return false
	}
	return utils.Contains(f.Users, strings.ToLower(c.From.Username))
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *UserFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *UserFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *UserFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *UserFilter) Not() Filter {
	return &NotFilter{f}
}

// Add adds a user to the filter's list of users.
func (f *UserFilter) Add(username string) {
	f.Users = append(f.Users, normalizeUsername(username))
}

// Remove removes a user from the filter's list of users.
func (f *UserFilter) Remove(username string) {
	f.Users = utils.Remove(f.Users, normalizeUsername(username))
}

// NewUserFilter returns a new `UserFilter`.
func NewUserFilter(usernames ...string) Filter {
	f := &UserFilter{}
	for _, username := range usernames {
		f.Add(username)
	}
	return f
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimPrefix(username, "@"))
}

// ChatFilter represents a filter for chats, by chat ID.
type ChatFilter struct {
	Chats []int64 // Chats is a list of chat IDs.
}

// Check checks if the update's chat is in the filter's list of chats.
func (f *ChatFilter) Check(c *Context) bool {
	if c.Chat == nil {
		return false
	}
	return utils.Contains(f.Chats, c.Chat.ID)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *ChatFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *ChatFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *ChatFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *ChatFilter) Not() Filter {
	return &NotFilter{f}
}

// Add adds a chat to the filter's list of chats.
func (f *ChatFilter) Add(chatID int64) {
	f.Chats = append(f.Chats, chatID)
}

// Remove removes a chat from the filter's list of chats.
func (f *ChatFilter) Remove(chatID int64) {
	f.Chats = utils.Remove(f.Chats, chatID)
}

// NewChatFilter returns a new `ChatFilter`.
func NewChatFilter(chatIDs ...int64) Filter {
	return &ChatFilter{Chats: chatIDs}
}

// RegexFilter represents a text filter based on a regular expression pattern.
type RegexFilter struct {
	Pattern *regexp.Regexp // Pattern represents the regular expression pattern used for filtering messages.
}

// Check checks if the text or caption of the update matches the pattern.
func (f *RegexFilter) Check(c *Context) bool {
	if f.Pattern == nil {
		return false
	}
	text := c.Text()
	return text != "" && f.Pattern.MatchString(text)
}

// And returns a new CombineFilter that combines the current filter with the provided filter using logical AND.
func (f *RegexFilter) And(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterAnd}
}

// Or returns a new CombineFilter that combines the current filter with the provided filter using logical OR.
func (f *RegexFilter) Or(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterOr}
}

// Xor returns a new CombineFilter that combines the current filter with the provided filter using logical XOR.
func (f *RegexFilter) Xor(filter Filter) Filter {
	return &CombineFilter{f, filter, CombineFilterXor}
}

// Not returns a new NotFilter negating the current filter.
func (f *RegexFilter) Not() Filter {
	return &NotFilter{f}
}

// NewRegexFilter returns a new `RegexFilter`.
func NewRegexFilter(pattern string) Filter {
	return &RegexFilter{Pattern: regexp.MustCompile(pattern)}
}
