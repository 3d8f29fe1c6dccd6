package state

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds short-lived status line messages, such as the
// result of copying a report. Dialogs are handled by DialogState.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{notifications: []Notification{}}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// Latest returns the most recent notification, if any.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}
