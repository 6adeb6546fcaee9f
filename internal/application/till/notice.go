package till

import (
	"time"

	"github.com/elesfuerzo/pos-api/internal/domain/enum"
)

// NoticeDisplayDuration is how long a notice stays visible. A new notice
// replaces the current one; notices are never queued.
const NoticeDisplayDuration = 4 * time.Second

// Notice is a transient advisory for the operator.
type Notice struct {
	Message   string        `json:"message"`
	Severity  enum.Severity `json:"severity"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Expired reports whether the notice should no longer be displayed.
func (n *Notice) Expired(now time.Time) bool {
	return !now.Before(n.ExpiresAt)
}
