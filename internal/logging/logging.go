// Package logging centralizes logger construction for the module's
// binaries.  Every logger shares one stderr backend with a common format,
// so log lines from different components line up.
package logging

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:-8s} %{module:-10s} %{message}`,
)

var once sync.Once

// GetLog returns the named logger, installing the shared backend on the
// first call.
func GetLog(module string) *logging.Logger {
	once.Do(func() {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
	})

	return logging.MustGetLogger(module)
}
