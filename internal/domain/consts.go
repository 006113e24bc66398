package domain

// Reaction markers tracked on boss announcements
const (
	MarkerAccept  = "white_check_mark"
	MarkerDecline = "x"
)

// MaxNamesShown is how many user ids are listed per participation side
// before the list collapses into "and N more...".
const MaxNamesShown = 10

// ServiceName identifies this process in structured log output.
const ServiceName = "boss-alert-bot"
