package entity

import "time"

// DispatchRecord is one row of the dispatch log: an announcement the bot
// successfully posted.
type DispatchRecord struct {
	ID          int64     `json:"id" db:"id"`
	MessageID   string    `json:"message_id" db:"message_id"`
	ChannelID   string    `json:"channel_id" db:"channel_id"`
	MonsterName string    `json:"monster_name" db:"monster_name"`
	SentAt      time.Time `json:"sent_at" db:"sent_at"`
}

// DispatchResult is returned to the caller after a successful dispatch.
// MarkersAttached is false when posting succeeded but one or both
// reaction markers could not be added.
type DispatchResult struct {
	MessageID       string `json:"message_id"`
	ChannelID       string `json:"channel_id"`
	MarkersAttached bool   `json:"markers_attached"`
}

// BotStatus is the observability payload for the status endpoint.
type BotStatus struct {
	Connected        bool   `json:"connected"`
	BotUser          string `json:"bot_user"`
	ChannelID        string `json:"channel_id"`
	RecentDispatches int64  `json:"recent_dispatches"`
}

// ReactionKind distinguishes the two reaction event types.
type ReactionKind int

const (
	ReactionAdded ReactionKind = iota
	ReactionRemoved
)

// ReactionEvent is the platform-neutral form of a reaction callback. The
// events adapter translates Slack callbacks into this shape so the alert
// service stays free of transport-specific control flow.
type ReactionEvent struct {
	Kind      ReactionKind
	MessageID string
	ChannelID string
	UserID    string
	Marker    string
	FromSelf  bool
}
