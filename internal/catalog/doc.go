// Package catalog holds the jewelry product inventory and the match
// scoring used to turn a stylist's tag query into ranked
// recommendations.
package catalog
