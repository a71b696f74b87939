package auth

import (
	"fmt"
	"strings"

	app_errors "docurag/backend/internal/errors"
	"docurag/backend/internal/model"
)

// adminUploadLimit is a large sentinel, not infinity, so quota comparisons
// stay ordinary integer comparisons.
const adminUploadLimit = 9999

// QuotaFor returns the maximum number of pending uploads a role may hold.
// It is a pure function and is recomputed on every admission check.
func QuotaFor(role model.Role) int {
	switch role {
	case model.RoleAdmin:
		return adminUploadLimit
	case model.RoleUser:
		return 5
	default:
		return 1
	}
}

// Admit decides whether one more file may join the pending upload set.
// It has no side effects: it either returns nil (admitted) or a
// quota-exceeded error carrying the role and numeric limit for display.
// A rejected file must never be forwarded to the upload orchestrator.
func Admit(pendingCount int, role model.Role) error {
	quota := QuotaFor(role)
	if pendingCount >= quota {
		noun := "files"
		if quota == 1 {
			noun = "file"
		}
		return fmt.Errorf("%w: as a %s, you can upload up to %d %s",
			app_errors.ErrQuotaExceeded, strings.ToUpper(string(role)), quota, noun)
	}
	return nil
}
