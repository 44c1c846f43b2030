package main

import "golang.design/x/hotkey/mainthread"

// runOnMainThread starts the Cocoa event loop on the main thread, which
// hotkey registration needs on macOS, and runs fn alongside it.
func runOnMainThread(fn func()) {
	mainthread.Init(fn)
}
