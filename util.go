package tgdango

import (
	"os"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
)

// deprecated remembers the methods already reported by deprecate.
var deprecated sync.Map

// deprecate warns once per method that it is deprecated.
//
// The warning is skipped when the environment variable "IGNORE_DEPRECATED_<ignorable>" is set.
//
// Args:
//   - method: The deprecated method.
//   - ignorable: The suffix of the environment variable silencing the warning.
//   - use: The replacement, if any.
//   - see: A link with more details, if any.
func deprecate(method, ignorable, use, see string) {
	if ignorable != "" && os.Getenv("IGNORE_DEPRECATED_"+ignorable) != "" {
		return
	}
	if _, loaded := deprecated.LoadOrStore(method, struct{}{}); loaded {
		return
	}

	event := log.Warn().Str("Method", method)
	if use != "" {
		event = event.Str("Use", use)
	}
	if see != "" {
		event = event.Str("See", see)
	}
	event.Msgf("%s is deprecated.", method)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
