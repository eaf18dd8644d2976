package utils

import (
	"fmt"
	"time"
)

// MessageType selects the color of a CLI message.
type MessageType int

const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI escape sequences for the message colors.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText wraps s in the color of msgType. Unknown types leave s untouched.
func DecorateText(s string, msgType MessageType) string {
	c, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// Decoratef formats according to a format specifier and decorates the result.
func Decoratef(msgType MessageType, format string, args ...any) string {
	return DecorateText(fmt.Sprintf(format, args...), msgType)
}

// FormatTime formats d as a human readable value, e.g. "1m 30.00s".
func FormatTime(d time.Duration) string {
	var (
		days    = int64(d / (24 * time.Hour))
		hours   = int64(d/time.Hour) % 24
		minutes = int64(d/time.Minute) % 60
		seconds = (d % time.Minute).Seconds()
	)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", minutes, seconds)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs", days, hours, minutes, seconds)
}
