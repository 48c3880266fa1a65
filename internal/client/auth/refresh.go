package auth

import (
	"context"
	"time"
)

// StartTokenRefresh starts the proactive id token refresh. Each tick forces a
// refresh while a password session is active; failures are logged and retried
// on the next tick. Restarting cancels the previous refresher.
func (m *Manager) StartTokenRefresh(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopRefreshLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.refreshCancel = cancel
	m.refreshDone = done

	interval := m.cfg.TokenRefreshInterval
	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.refreshTick(ctx)
			}
		}
	}()

	m.logger.Debug("Token refresh started", "interval", interval)
}

// StopTokenRefresh stops the refresher and waits for it to exit
func (m *Manager) StopTokenRefresh() {
	m.mu.Lock()
	done := m.refreshDone
	m.stopRefreshLocked()
	m.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (m *Manager) stopRefreshLocked() {
	if m.refreshCancel != nil {
		m.refreshCancel()
	}
	m.refreshCancel = nil
	m.refreshDone = nil
}

func (m *Manager) refreshTick(ctx context.Context) {
	if !m.isLoggedIn(ctx, KindPassword) {
		return
	}
	if token := m.GetValidToken(ctx, true); token == "" {
		m.logger.Warn("Scheduled token refresh failed, will retry on next tick")
		return
	}
	m.logger.Debug("Id token refreshed")
}
