//go:build darwin && cgo

package main

import "golang.design/x/hotkey/mainthread"

// runOnMainThread runs fn while the main thread serves the hotkey backend,
// which macOS requires for global key registration.
func runOnMainThread(fn func()) { mainthread.Init(fn) }
