package utils

import (
	"fmt"
	"sync"
)

var (
	intentCounter int
	mu            sync.Mutex
)

func init() {
	intentCounter = 1
}

// NextIntentID mints a process-local correlation id for board mutation
// intents. These never leave the client, so a counter is enough.
func NextIntentID() string {
	mu.Lock()
	defer mu.Unlock()

	id := intentCounter
	intentCounter++
	return fmt.Sprintf("intent-%d", id)
}
