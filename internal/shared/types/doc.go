// Package types defines shared data structures used across the kiosk
// backend: conversation turns, question/option sets, and coarse
// conversation states. Keeping these here avoids import cycles between
// the session core and the conversation layer.
package types
