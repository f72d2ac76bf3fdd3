package reference

import (
	"fmt"
	"strings"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

const (
	// Prefix marks every display reference handed to a customer.
	Prefix = "TRB"

	suffixLength = 6
)

// New generates a human-readable booking reference: a fixed prefix, the
// current unix timestamp and a short random suffix. The reference is for
// display only and is never persisted or used as a lookup key.
func New() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLength])

	return fmt.Sprintf("%s-%d-%s", Prefix, timezone.Now().Unix(), suffix)
}
