package snowflake

import (
	"fmt"
	"sync"

	bw "github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *bw.Node
)

// Init configures the generator for the given node ID (0-1023).
func Init(nodeID int64) error {
	n, err := bw.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns a new unique ID. Init must have been called.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		panic("snowflake: NextID called before Init")
	}
	return n.Generate().Int64()
}
