// Command antennas analyzes antenna grids: every antenna is linked to all
// antennas sharing its frequency, and the resulting graph can be traversed,
// searched for paths, checked for cross-frequency contacts and persisted.
//
// Usage:
//
//	antennas --grid data/antennas.txt show
//	antennas --grid data/antennas.txt dfs 1 1 B
//	antennas --grid data/antennas.txt paths 1 1 3 7 B
//	antennas --grid data/antennas.txt intersect A B
//	antennas --config antennas.yaml run
//	antennas --grid data/antennas.txt snapshot save
//	antennas --grid data/antennas.txt watch --metrics-addr :9108
//	antennas generate 40 80 --density 0.05 --frequencies ABC -o grid.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "antennas:", err)
		os.Exit(1)
	}
}
