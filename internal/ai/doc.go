// Package ai provides the jewelry stylist intelligence behind the
// kiosk conversation. A Client takes the conversation so far and
// returns either the next question to ask the shopper or a product
// recommendation query. Two implementations exist: GeminiClient calls
// the hosted model, MockClient runs a scripted question sequence for
// development and tests.
package ai
