package session

import (
	"golang.org/x/sys/execabs"
)

func browse(url string) error {
	return execabs.Command("open", url).Start()
}
