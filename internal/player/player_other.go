//go:build !darwin && !linux && !windows

package player

import (
	"errors"
	"runtime"
)

var errUnsupported = errors.New("audio playback not supported on " + runtime.GOOS)

func (s *System) Play(string, float64) error {
	return &Error{Command: "none", Err: errUnsupported}
}
