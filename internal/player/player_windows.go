//go:build windows

package player

import (
	"fmt"
	"strings"
)

// Play uses Media.SoundPlayer through PowerShell. Volume is not supported.
func (s *System) Play(path string, _ float64) error {
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", strings.ReplaceAll(path, "'", "''"))
	if err := s.run("powershell", "-c", script); err != nil {
		return &Error{Command: "powershell", Err: err}
	}
	return nil
}
