package host

// Package host abstracts the UV-editing host application. The Host
// interface exposes the two capabilities the tool needs (query the first
// selected UV, translate the selection) and is implemented by a Maya
// commandPort binding, a WebSocket bridge binding for hosts running the
// bridge plugin, and an in-memory binding for offline use and tests.
