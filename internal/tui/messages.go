package tui

// clearNoticeMsg removes the status line notification after a delay
type clearNoticeMsg struct{}
