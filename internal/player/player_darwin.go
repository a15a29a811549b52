//go:build darwin

package player

import "strconv"

// Play runs afplay; -v takes a linear gain where 1 is full volume.
func (s *System) Play(path string, volume float64) error {
	v := strconv.FormatFloat(clamp(volume), 'g', -1, 64)
	if err := s.run("afplay", "-v", v, path); err != nil {
		return &Error{Command: "afplay", Err: err}
	}
	return nil
}
