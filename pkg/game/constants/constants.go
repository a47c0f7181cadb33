package constants

import "time"

const (
	// TickInterval is the game loop interval (20 ticks per second)
	TickInterval = 50 * time.Millisecond
	// TaskQueueSize is the number of tasks the game loop can hold between ticks
	TaskQueueSize = 256

	// SnapshotTimeout bounds how long a request waits for the game loop
	SnapshotTimeout = 2 * time.Second

	// SyncPort is the fixed port of the sync HTTP server
	SyncPort = 47123
	// MaxConnections is the number of HTTP connections served at once
	MaxConnections = 4

	// PlayerMaxHealth is the default max health of a player
	PlayerMaxHealth float64 = 20
)
