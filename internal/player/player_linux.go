//go:build linux

package player

import "strconv"

// paplayUnity is PulseAudio's 100% volume.
const paplayUnity = 65536

// Play tries PulseAudio first and falls back to ALSA, which has no volume flag.
func (s *System) Play(path string, volume float64) error {
	vol := strconv.Itoa(int(clamp(volume) * paplayUnity))
	if err := s.run("paplay", "--volume", vol, path); err == nil {
		return nil
	}
	if err := s.run("aplay", "-q", path); err != nil {
		return &Error{Command: "aplay", Err: err}
	}
	return nil
}
