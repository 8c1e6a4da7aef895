package tgdango

import (
	"encoding/json"
	"fmt"

	"github.com/mymmrac/telego"
)

// Extra holds the optional parameters of an outgoing call, keyed by Bot API field name.
//
// A key that is present with a nil value counts as set. Setting "reply_to_message_id" to nil
// opts a single call out of reply linkage.
type Extra map[string]any

// Has reports whether the key is present.
func (e Extra) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// ReplyToMessageID returns the reply target, if one is set to a usable number.
func (e Extra) ReplyToMessageID() (int, bool) {
	switch v := e[ExtraReplyToMessageID].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// mergeExtra copies the given extras into a new map, later ones winning.
// It returns nil when there is nothing to merge.
func mergeExtra(extras ...Extra) Extra {
	var merged Extra
	for _, extra := range extras {
		for k, v := range extra {
			if merged == nil {
				merged = make(Extra, len(extra))
			}
			merged[k] = v
		}
	}

	return merged
}

// decode copies every plain key onto the telego params struct by its JSON field name.
// Keys with a dedicated Go type are skipped, see [Extra.replyParameters] and [Extra.replyMarkup].
func (e Extra) decode(params any) error {
	plain := make(map[string]any, len(e))
	for k, v := range e {
		switch k {
		case ExtraReplyToMessageID, ExtraReplyMarkup:
			continue
		}
		plain[k] = v
	}
	if len(plain) == 0 {
		return nil
	}

	data, err := json.Marshal(plain)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExtra, err)
	}
	if err = json.Unmarshal(data, params); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExtra, err)
	}

	return nil
}

// replyParameters turns "reply_to_message_id" into [telego.ReplyParameters].
// An explicit "reply_parameters" value that was already decoded is kept.
func (e Extra) replyParameters(current *telego.ReplyParameters) *telego.ReplyParameters {
	if current != nil {
		return current
	}
	if id, ok := e.ReplyToMessageID(); ok {
		return &telego.ReplyParameters{MessageID: id}
	}

	return nil
}

// replyMarkup returns the "reply_markup" value, which must already be a telego markup.
func (e Extra) replyMarkup() (telego.ReplyMarkup, error) {
	v, ok := e[ExtraReplyMarkup]
	if !ok || v == nil {
		return nil, nil
	}
	markup, ok := v.(telego.ReplyMarkup)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a telego.ReplyMarkup, got %T", ErrInvalidExtra, ExtraReplyMarkup, v)
	}

	return markup, nil
}

// inlineKeyboard returns the "reply_markup" value for calls that only accept inline keyboards.
func (e Extra) inlineKeyboard() (*telego.InlineKeyboardMarkup, error) {
	markup, err := e.replyMarkup()
	if err != nil || markup == nil {
		return nil, err
	}
	keyboard, ok := markup.(*telego.InlineKeyboardMarkup)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an inline keyboard, got %T", ErrInvalidExtra, ExtraReplyMarkup, markup)
	}

	return keyboard, nil
}
