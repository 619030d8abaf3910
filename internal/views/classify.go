package views

import (
	"strings"

	"github.com/nazmul-dev/campusmart/backend/internal/models"
)

// audience is the derived recipient side of a notification.
type audience int

const (
	audienceUnknown audience = iota
	audienceSeller
	audienceRequester
)

var sellerKinds = map[models.NotificationKind]bool{
	models.KindListingRequested: true,
	models.KindOfferReceived:    true,
}

var requesterKinds = map[models.NotificationKind]bool{
	models.KindRequestAccepted:      true,
	models.KindRequestRejected:      true,
	models.KindTransactionCompleted: true,
}

// Legacy rows carry no kind; their audience is inferred from the display text
// with the same substrings the old classifier used. Matching is
// case-insensitive.
var sellerPatterns = []string{
	"has requested your listing",
	"wants to offer item to your listing",
}

var requesterPatterns = []string{
	"has accepted your request",
	"has rejected your request",
	"transaction is successful",
}

// classify resolves the audience of a notification, preferring the stored
// kind and falling back to message-text matching for legacy rows.
func classify(n models.Notification) audience {
	if n.Kind != "" {
		switch {
		case sellerKinds[n.Kind]:
			return audienceSeller
		case requesterKinds[n.Kind]:
			return audienceRequester
		}
		return audienceUnknown
	}

	msg := strings.ToLower(n.Message)
	if matchesAny(msg, sellerPatterns) {
		return audienceSeller
	}
	if matchesAny(msg, requesterPatterns) {
		return audienceRequester
	}
	return audienceUnknown
}

func matchesAny(lowered string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}

func filterByAudience(notifications []models.Notification, aud audience) []models.Notification {
	var out []models.Notification
	for _, n := range notifications {
		if classify(n) == aud {
			out = append(out, n)
		}
	}
	return out
}
