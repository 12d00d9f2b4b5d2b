//go:build !darwin && !windows

package session

import (
	"golang.org/x/sys/execabs"
)

func browse(url string) error {
	return execabs.Command("xdg-open", url).Start()
}
