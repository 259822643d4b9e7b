package editor

import (
	"os"
	"os/exec"
)

// Replaced in tests.
var (
	getenv   = os.Getenv
	lookPath = exec.LookPath
)
