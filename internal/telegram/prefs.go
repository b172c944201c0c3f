package telegram

import "sync"

// UserPrefs holds per-user settings. In-memory only: preferences reset on
// restart, same as the rest of the cache.
type UserPrefs struct {
	AutoNotify bool
}

// Prefs is a concurrency-safe store of user preferences keyed by user ID.
type Prefs struct {
	mu    sync.RWMutex
	users map[int64]*UserPrefs
}

func NewPrefs() *Prefs {
	return &Prefs{users: make(map[int64]*UserPrefs)}
}

func (p *Prefs) SetAutoNotify(userID int64, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.users[userID]
	if !ok {
		u = &UserPrefs{}
		p.users[userID] = u
	}
	u.AutoNotify = on
}

// AutoNotifyUsers returns the IDs of every user with auto-notify enabled.
func (p *Prefs) AutoNotifyUsers() []int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var ids []int64
	for id, u := range p.users {
		if u.AutoNotify {
			ids = append(ids, id)
		}
	}
	return ids
}
