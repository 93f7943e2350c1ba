package domain

// NotificationKind is the severity of a user-facing toast.
type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindInfo    NotificationKind = "info"
	KindError   NotificationKind = "error"
)

// Notification is emitted by flow transitions. State is the flow state after the
// transition that produced it.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	State   State            `json:"state"`
}

const (
	MessageInvalidForm = "Please fill all required fields correctly"
	MessageSubmitted   = "Reservation submitted successfully!"
	MessageFinalized   = "Your order has been finalized!"
)

func MessageAdded(name string) string        { return "Added " + name + " to your order" }
func MessageAddedAnother(name string) string { return "Added another " + name + " to your order" }
func MessageRemovedOne(name string) string   { return "Removed one " + name + " from your order" }
func MessageRemoved(name string) string      { return "Removed " + name + " from your order" }
