package gamedomain

import (
	"strings"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// futureGrace absorbs clock skew between the client and the server.
const futureGrace = time.Minute

var parser = newParser()

func newParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParsePlayedAt resolves when a game was played. Empty input means now. Input
// may be RFC 3339 or natural language relative to now ("yesterday 9pm").
func ParsePlayedAt(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return now, nil
	}

	t, err := time.Parse(time.RFC3339, input)
	if err != nil {
		r, perr := parser.Parse(input, now)
		if perr != nil || r == nil {
			return time.Time{}, apperrors.Validation("played_at", "could not understand the played-at time "+input)
		}
		t = r.Time
	}

	if t.After(now.Add(futureGrace)) {
		return time.Time{}, apperrors.Validation("played_at", "played-at time is in the future")
	}
	return t, nil
}
