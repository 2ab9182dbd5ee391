// Package ws streams the kiosk conversation over a WebSocket. Each
// connection owns one survey session plus a lifecycle watcher, so
// expiry warnings and timeouts are pushed to the shopper's screen
// without polling.
package ws
