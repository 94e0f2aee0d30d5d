// SPDX-License-Identifier: MIT

package generate_test

import (
	"fmt"

	"github.com/katalvlaran/antennas/generate"
)

// ExampleComplete builds K_4 on one frequency.
func ExampleComplete() {
	g, err := generate.Complete(4, 'A')
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Len(), "antennas,", g.EdgeCount(), "links")
	// Output: 4 antennas, 6 links
}
