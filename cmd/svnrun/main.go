// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/lburgey/svnrun/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(cmd.ExitCode())
}
