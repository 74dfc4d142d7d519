package domain

// Destination is a screen the client can move the user to.
type Destination string

const (
	DestinationHome    Destination = "home"
	DestinationLogin   Destination = "login"
	DestinationAccount Destination = "account"
)
