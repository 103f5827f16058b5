// SPDX-License-Identifier: EPL-2.0

package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ik5/deejay/control"
	"golang.org/x/term"
)

// flushInterval is how often parked updates are retried while idle.
const flushInterval = 10 * time.Millisecond

// Console reads single key presses and forwards them to a Controller.
type Console struct {
	ctrl   *control.Controller
	keymap Keymap
	state  State
}

func New(ctrl *control.Controller, keymap Keymap) *Console {
	return &Console{
		ctrl:   ctrl,
		keymap: keymap,
		state:  DefaultState(),
	}
}

// State is the last state sent to the controller.
func (c *Console) State() State { return c.state }

// Run handles keys from in until quit is pressed or ctx is done, echoing the
// mixer state to out after every change. A terminal on in is switched to raw
// mode for the duration of the call. When in reaches EOF, Run keeps flushing
// until ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		old, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("setting raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(f.Fd()), old) }()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan byte)
	readErr := make(chan error, 1)
	// The reader blocks in Read and cannot be interrupted; it exits on the
	// next key or when in is closed.
	go readKeys(ctx, in, keys, readErr)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	fmt.Fprintf(out, "\r%s", c.state)

	for {
		select {
		case <-ctx.Done():
			fmt.Fprint(out, "\r\n")
			return nil
		case <-ticker.C:
			c.ctrl.Flush()
		case err := <-readErr:
			readErr = nil
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("reading keys: %w", err)
			}
		case key := <-keys:
			state, u, action := c.keymap.Apply(c.state, key)
			switch action {
			case ActionQuit:
				fmt.Fprint(out, "\r\n")
				return nil
			case ActionUpdate:
				if err := c.ctrl.Set(u); err != nil {
					return err
				}
				c.state = state
				fmt.Fprintf(out, "\r%s", c.state)
			case ActionNone:
			}
		}
	}
}

func readKeys(ctx context.Context, in io.Reader, keys chan<- byte, errs chan<- error) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n == 1 {
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			errs <- err
			return
		}
	}
}
