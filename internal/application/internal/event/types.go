package event

const ApplicationEventsTopic = "application_events"

const (
	TypeSubmitted     = "submitted"
	TypeStatusChanged = "status_changed"
	TypeDeleted       = "deleted"
)

// ApplicationEvent 投递记录的变更事件
type ApplicationEvent struct {
	Type          string `json:"type"`
	ApplicationID int64  `json:"applicationId"`
	Position      string `json:"position,omitempty"`
	Email         string `json:"email,omitempty"`
	Status        string `json:"status,omitempty"`
	// 毫秒时间戳
	Time int64 `json:"time"`
}
