package tgdango

import "github.com/mymmrac/telego"

// UpdateType represents the kind of an incoming update.
type UpdateType int64

// Update types.
const (
	// Update carrying a new incoming message.
	OnMessage UpdateType = 1 << iota
	// Update carrying a new version of a known message.
	OnEditedMessage
	// Update carrying a new channel post.
	OnChannelPost
	// Update carrying a new version of a known channel post.
	OnEditedChannelPost
	// Update carrying an incoming inline query.
	OnInlineQuery
	// Update carrying the result of an inline query chosen by a user.
	OnChosenInlineResult
	// Update carrying an incoming callback query.
	OnCallbackQuery
	// Update carrying an incoming shipping query.
	OnShippingQuery
	// Update carrying an incoming pre-checkout query.
	OnPreCheckoutQuery
	// Update carrying a new poll state.
	OnPoll
	// Update carrying a changed answer of a user in a non-anonymous poll.
	OnPollAnswer
	// Update carrying a change of the bot's chat member status.
	OnMyChatMember
	// Update carrying a change of a chat member's status.
	OnChatMember
	// Update carrying a request to join a chat.
	OnChatJoinRequest

	// OnUnknown marks updates of a kind the framework does not know about.
	OnUnknown UpdateType = 0
)

// OnAnyMessage matches every update that carries a message-like payload.
const OnAnyMessage = OnMessage | OnEditedMessage | OnChannelPost | OnEditedChannelPost

// String returns the Bot API field name of the update type.
func (t UpdateType) String() string {
	switch t {
	case OnMessage:
		return "message"
	case OnEditedMessage:
		return "edited_message"
	case OnChannelPost:
		return "channel_post"
	case OnEditedChannelPost:
		return "edited_channel_post"
	case OnInlineQuery:
		return "inline_query"
	case OnChosenInlineResult:
		return "chosen_inline_result"
	case OnCallbackQuery:
		return "callback_query"
	case OnShippingQuery:
		return "shipping_query"
	case OnPreCheckoutQuery:
		return "pre_checkout_query"
	case OnPoll:
		return "poll"
	case OnPollAnswer:
		return "poll_answer"
	case OnMyChatMember:
		return "my_chat_member"
	case OnChatMember:
		return "chat_member"
	case OnChatJoinRequest:
		return "chat_join_request"
	default:
		return "unknown"
	}
}

// updateTypeOf reports which field of the update is populated.
func updateTypeOf(update telego.Update) UpdateType {
	switch {
	case update.Message != nil:
		return OnMessage
	case update.EditedMessage != nil:
		return OnEditedMessage
	case update.ChannelPost != nil:
		return OnChannelPost
	case update.EditedChannelPost != nil:
		return OnEditedChannelPost
	case update.InlineQuery != nil:
		return OnInlineQuery
	case update.ChosenInlineResult != nil:
		return OnChosenInlineResult
	case update.CallbackQuery != nil:
		return OnCallbackQuery
	case update.ShippingQuery != nil:
		return OnShippingQuery
	case update.PreCheckoutQuery != nil:
		return OnPreCheckoutQuery
	case update.Poll != nil:
		return OnPoll
	case update.PollAnswer != nil:
		return OnPollAnswer
	case update.MyChatMember != nil:
		return OnMyChatMember
	case update.ChatMember != nil:
		return OnChatMember
	case update.ChatJoinRequest != nil:
		return OnChatJoinRequest
	default:
		return OnUnknown
	}
}
