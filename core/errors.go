// ABOUTME: Shared failure policy consulted by every feature reducer before local error handling.
package core

import "github.com/2389-research/gifbox/wire"

// HandleCommonErrors returns the root event that supersedes feature-local
// handling of err, if any. A 401 always means the session is gone.
func HandleCommonErrors(err wire.Error) (Event, bool) {
	if err.IsUnauthorized() {
		return Logout{}, true
	}
	return nil, false
}
