package services

import (
	"fmt"
	"sync"
	"time"

	"brigadas_admin_go/config"

	"go.uber.org/zap"
)

const (
	failedLoginWindow    = 10 * time.Minute
	failedLoginThreshold = 5
	alertCooldown        = 1 * time.Hour
	maxAlerts            = 100
)

// SecurityEventMonitor counts rejected admin logins per IP and raises an alert
// when one IP keeps failing
type SecurityEventMonitor struct {
	mu           sync.Mutex
	failedLogins map[string][]time.Time // IP -> failure timestamps inside the window
	alertedIPs   map[string]time.Time   // IP -> last alert
	alerts       []SecurityAlert        // newest first
	now          func() time.Time
	onAlert      func(SecurityAlert)
}

// SecurityAlert is one raised alert
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Level     string // "WARNING", "CRITICAL"
}

// Monitor is the process-wide monitor, nil until InitSecurityMonitor runs
var Monitor *SecurityEventMonitor

// NewSecurityMonitor creates a monitor. onAlert may be nil.
func NewSecurityMonitor(onAlert func(SecurityAlert)) *SecurityEventMonitor {
	return &SecurityEventMonitor{
		failedLogins: make(map[string][]time.Time),
		alertedIPs:   make(map[string]time.Time),
		now:          time.Now,
		onAlert:      onAlert,
	}
}

// InitSecurityMonitor sets the global monitor. Alerts are mailed to NOTIFY_EMAIL when set.
func InitSecurityMonitor(cfg *config.Config) {
	var onAlert func(SecurityAlert)
	if cfg.NotifyEmail != "" {
		onAlert = func(a SecurityAlert) {
			SendEmailAsync(cfg, &Email{
				To:      []string{cfg.NotifyEmail},
				Subject: fmt.Sprintf("Alerta de seguridad: %s", a.Reason),
				TextBody: fmt.Sprintf("Evento de seguridad en el panel de brigadas:\n\nTipo: %s\nIP: %s\nHora: %s\n",
					a.Reason, a.IP, a.Timestamp.Format(time.RFC1123)),
			})
		}
	}
	Monitor = NewSecurityMonitor(onAlert)
	go Monitor.cleanup()
}

// TrackFailedLogin records a rejected login and alerts at the threshold
func (m *SecurityEventMonitor) TrackFailedLogin(ip string) {
	m.mu.Lock()
	now := m.now()
	windowStart := now.Add(-failedLoginWindow)

	valid := m.failedLogins[ip][:0]
	for _, t := range m.failedLogins[ip] {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	valid = append(valid, now)
	m.failedLogins[ip] = valid

	var alert *SecurityAlert
	if len(valid) >= failedLoginThreshold {
		alert = m.raiseLocked(ip, "Multiple failed admin logins", now)
	}
	m.mu.Unlock()

	if alert != nil && m.onAlert != nil {
		m.onAlert(*alert)
	}
}

// raiseLocked stores an alert unless the IP was alerted within the cooldown
func (m *SecurityEventMonitor) raiseLocked(ip, reason string, now time.Time) *SecurityAlert {
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < alertCooldown {
		return nil
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{Timestamp: now, IP: ip, Reason: reason, Level: "CRITICAL"}
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	zap.L().Error("security alert", zap.String("reason", reason), zap.String("ip", ip))
	return &alert
}

// GetRecentAlerts returns a copy of the alert history
func (m *SecurityEventMonitor) GetRecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alertsCopy := make([]SecurityAlert, len(m.alerts))
	copy(alertsCopy, m.alerts)
	return alertsCopy
}

// prune drops stale attempts and expired cooldowns
func (m *SecurityEventMonitor) prune() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for ip, attempts := range m.failedLogins {
		if len(attempts) == 0 || now.Sub(attempts[len(attempts)-1]) > failedLoginWindow {
			delete(m.failedLogins, ip)
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) > alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
}

func (m *SecurityEventMonitor) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		m.prune()
	}
}
