package domain

import "strings"

const (
	SystemEntity       = "system"
	NotificationEntity = "notification"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionError     = "error"

	MetadataSessionID = "sessionId"
)

var (
	TopicSystemConnected = buildEntityTopic(SystemEntity, ActionConnected)
	TopicSystemPong      = buildEntityTopic(SystemEntity, ActionPong)
	TopicSystemError     = buildEntityTopic(SystemEntity, ActionError)
)

// NotificationTopic is the topic every toast of kind is published on, e.g.
// "notification.success".
func NotificationTopic(kind string) string {
	return buildEntityTopic(NotificationEntity, kind)
}

// NotificationTopics lists the topics a session stream subscribes to.
func NotificationTopics() []string {
	return []string{NotificationTopic("success"), NotificationTopic("info"), NotificationTopic("error")}
}

func buildEntityTopic(entity, action string) string {
	cleanEntity := strings.TrimSpace(entity)
	cleanAction := strings.ToLower(strings.TrimSpace(action))
	if cleanEntity == "" || cleanAction == "" {
		return ""
	}
	return cleanEntity + "." + cleanAction
}
