// Package permissions implements the location-permission store the broker
// queries before handing ranging data to a caller.
package permissions

import (
	"sync"

	"github.com/openrtt/rttd/rtt"
)

// AllowList is a mutable uid allowlist. Checks are cheap and synchronous so
// the broker can query fresh state at every delivery.
type AllowList struct {
	mu   sync.RWMutex
	uids map[uint32]struct{}
}

func NewAllowList(uids ...uint32) *AllowList {
	a := &AllowList{uids: make(map[uint32]struct{}, len(uids))}
	for _, uid := range uids {
		a.uids[uid] = struct{}{}
	}
	return a
}

// Allowed reports whether the caller currently holds location permission.
func (a *AllowList) Allowed(caller rtt.Identity) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.uids[caller.UID]
	return ok
}

func (a *AllowList) Grant(uid uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.uids[uid] = struct{}{}
}

func (a *AllowList) Revoke(uid uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.uids, uid)
}
