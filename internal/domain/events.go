package domain

// Push channel event names. Payload for both is the Order entity.
const (
	EventNewOrder    = "newOrder"
	EventUpdateOrder = "updateOrder"
)
