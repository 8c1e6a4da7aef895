package tgdango

import (
	"errors"
	"time"
)

const (
	DEFAULT_PREFIX        = "/"
	DEFAULT_POLL_TIMEOUT  = 30
	DEFAULT_WORKERS       = 1
	BASE_BACKOFF_DUR      = 1 * time.Second
	MAX_BACKOFF_DUR       = 30 * time.Second
	DEFAULT_SAVE_INTERVAL = 30 * time.Minute
	MAX_SUGGEST_DISTANCE  = 2
)

// Names of the [Extra] keys handled by the framework itself.
const (
	ExtraParseMode        = "parse_mode"
	ExtraReplyToMessageID = "reply_to_message_id"
	ExtraReplyParameters  = "reply_parameters"
	ExtraReplyMarkup      = "reply_markup"
)

// Text formatting modes understood by the Bot API.
const (
	ParseModeHTML       = "HTML"
	ParseModeMarkdown   = "Markdown"
	ParseModeMarkdownV2 = "MarkdownV2"
)

const (
	PersistenceGob    = "gob"
	PersistenceSQLite = "sqlite"
)

var (
	ErrCapabilityUnavailable = errors.New("capability unavailable")
	ErrCapabilityRemoved     = errors.New("capability removed")
	ErrInvalidExtra          = errors.New("invalid extra")

	ErrNextCalledTwice = errors.New("next called multiple times")
	ErrNotInitialized  = errors.New("application is not initialized")
	ErrNoTransport     = errors.New("no transport configured")
	ErrNoToken         = errors.New("no bot token configured")

	ErrUnknownPersistence = errors.New("unknown persistence driver")
)
