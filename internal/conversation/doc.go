// Package conversation runs the kiosk's survey turn loop. The
// Controller glues the session lifecycle to the stylist intelligence:
// it restores or opens a conversation, feeds shopper answers (typed or
// spoken) to the stylist, persists every turn, and resolves the
// terminal product query against the catalog.
package conversation
