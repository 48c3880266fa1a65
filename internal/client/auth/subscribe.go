package auth

import (
	"context"
	"time"
)

// Subscribe registers callback for login state changes. Two sources feed it:
//   - the password provider's native listener, on every sign-in/sign-out;
//   - a best-effort poll every PollInterval that re-evaluates all providers,
//     since Apple and Kakao have no push channel. The poll only reports changes.
//
// One poll timer serves all subscribers: it starts with the first subscription
// and stops with the last. The returned unsubscribe is idempotent.
func (m *Manager) Subscribe(callback func(loggedIn bool)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	sub := &subscriber{callback: callback}
	m.subscribers[id] = sub
	m.startPollLocked()
	m.mu.Unlock()

	if m.password != nil {
		cancel := m.password.OnAuthStateChanged(func(bool) {
			status := m.CheckIntegratedStatus(context.Background())
			m.deliver(id, status.LoggedIn)
		})
		m.mu.Lock()
		if _, ok := m.subscribers[id]; ok {
			sub.cancelNative = cancel
			cancel = nil
		}
		m.mu.Unlock()
		// отписались, пока регистрировали listener
		if cancel != nil {
			cancel()
		}
	}

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		sub, ok := m.subscribers[id]
		if !ok {
			return
		}
		delete(m.subscribers, id)
		if sub.cancelNative != nil {
			sub.cancelNative()
		}
		if len(m.subscribers) == 0 {
			m.stopPollLocked()
		}
	}
}

// deliver always invokes the subscriber; used by the native listener
func (m *Manager) deliver(id int, loggedIn bool) {
	m.mu.Lock()
	sub, ok := m.subscribers[id]
	if ok {
		sub.last = loggedIn
		sub.delivered = true
	}
	m.mu.Unlock()

	if ok {
		sub.callback(loggedIn)
	}
}

// notifySubscribers re-evaluates the session and invokes subscribers whose
// last seen state differs
func (m *Manager) notifySubscribers(ctx context.Context) {
	m.mu.Lock()
	empty := len(m.subscribers) == 0
	m.mu.Unlock()
	if empty {
		return
	}

	status := m.CheckIntegratedStatus(ctx)

	m.mu.Lock()
	var callbacks []func(bool)
	for _, sub := range m.subscribers {
		if sub.delivered && sub.last == status.LoggedIn {
			continue
		}
		sub.last = status.LoggedIn
		sub.delivered = true
		callbacks = append(callbacks, sub.callback)
	}
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(status.LoggedIn)
	}
}

func (m *Manager) startPollLocked() {
	if m.pollCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.pollCancel = cancel

	interval := m.cfg.PollInterval
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.notifySubscribers(ctx)
			}
		}
	}()
}

func (m *Manager) stopPollLocked() {
	if m.pollCancel == nil {
		return
	}
	m.pollCancel()
	m.pollCancel = nil
}
