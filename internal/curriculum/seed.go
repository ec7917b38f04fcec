package curriculum

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed data/curriculum.json
var seedJSON []byte

var (
	defaultOnce  sync.Once
	defaultGraph *Graph
)

// Default returns the graph built from the curriculum seed embedded in the
// binary. An invalid seed is a programmer error and panics at first use.
func Default() *Graph {
	defaultOnce.Do(func() {
		g, err := LoadJSON(seedJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded curriculum is invalid: %v", err))
		}
		defaultGraph = g
	})
	return defaultGraph
}
