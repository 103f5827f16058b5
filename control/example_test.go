// SPDX-License-Identifier: EPL-2.0

package control_test

import (
	"fmt"

	"github.com/ik5/deejay/control"
	"github.com/ik5/deejay/mixer"
)

func ExampleController() {
	tx, rx, _ := mixer.NewParameterChannel(1)
	ctrl := control.NewController(tx)

	// A fast crossfader move into a one-slot channel.
	for _, p := range []float32{0.25, 0.5, 0.75, 1} {
		_ = ctrl.Set(mixer.Crossfader(p))
	}
	fmt.Println("parked:", ctrl.Pending())

	// The audio side drains, the next control tick flushes.
	u, _ := rx.Pop()
	fmt.Println(u)
	ctrl.Flush()
	u, _ = rx.Pop()
	fmt.Println(u)
	// Output:
	// parked: 1
	// Crossfader(0.25)
	// Crossfader(1)
}
