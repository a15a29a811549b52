// Package player plays audio files through the host's command-line players.
//
// Playback blocks until the external player exits so that a hook process
// does not return before its melody has finished.
package player

import (
	"fmt"
	"os/exec"
)

// Player plays one audio file at the given volume.
type Player interface {
	Play(path string, volume float64) error
}

// Error reports a failed playback command.
type Error struct {
	Command string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("playback via %s failed: %v", e.Command, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// System plays audio with the platform's player.
type System struct {
	run func(name string, args ...string) error
}

// New returns the player for the current platform.
func New() *System {
	return &System{run: runCommand}
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// clamp bounds v to [0,1]; NaN becomes 0.
func clamp(v float64) float64 {
	switch {
	case !(v >= 0):
		return 0
	case v > 1:
		return 1
	}
	return v
}
