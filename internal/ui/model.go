// Package ui provides internal state management and rendering utilities for ephemeral terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/style"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

// Model encapsulates the state for displaying non-blocking terminal alerts.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// NotificationMsg carries the text of a new notification.
type NotificationMsg string

// ClearNotificationMsg is a Bubbletea message used to reset the visual notification state.
// At carries the time of the notification it was scheduled for, so a newer one survives it.
type ClearNotificationMsg struct {
	At time.Time
}

// Notify returns a tea.Cmd that raises a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// ClearNotification returns a delayed tea.Cmd that clears the notification raised at `at`.
func ClearNotification(at time.Time) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{At: at}
	})
}

// Update processes incoming messages to modify the notification state.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return ClearNotification(m.notifiedAt)
	case ClearNotificationMsg:
		if msg.At.Equal(m.notifiedAt) {
			m.notification = ""
		}
		return nil
	}
	return nil
}

// Current returns the text on screen, empty when there is none.
func (m *Model) Current() string {
	return m.notification
}

// View appends the current notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] = lines[len(lines)-1] + "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
