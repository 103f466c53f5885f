// Package events defines the notification events published after item
// mutations commit.
package events

// Event types attached to every published notification. Downstream consumers
// filter on the eventType message attribute.
const (
	ItemCreated = "ITEM_CREATED"
	ItemUpdated = "ITEM_UPDATED"
	ItemDeleted = "ITEM_DELETED"
)

// Envelope is the JSON message body sent to the notification topic.
// Data carries the full item for create/update and {id} for delete.
type Envelope struct {
	EventType string      `json:"eventType"`
	Data      interface{} `json:"data"`
}
