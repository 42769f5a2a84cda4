// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package main

import "testing"

// TestMainPackage ensures the main package compiles and can be tested.
// The actual main() function delegates to cmd.Execute() which is tested
// in the internal/cmd package.
func TestMainPackage(t *testing.T) {
}
