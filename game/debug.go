package game

import "log"

// Debug flags for various subsystems
var (
	DebugCollisions = false // Set to true to log every player and ball contact
)

// logContact logs a collision when debugging is enabled
func logContact(kind, a, b string, overlap float64) {
	if DebugCollisions {
		log.Printf("[COLLISION DEBUG] %s: %s <-> %s overlap:%.2f", kind, a, b, overlap)
	}
}
