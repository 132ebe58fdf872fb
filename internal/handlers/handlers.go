// Package handlers contains the fiber handlers for the single-page audit UI.
package handlers

import "regexp"

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// reportFilename derives a safe download filename from the paper name.
func reportFilename(paperName string) string {
	base := unsafeFilename.ReplaceAllString(paperName, "_")
	if base == "" || base == "_" {
		base = "paper"
	}
	return base + ".audit.txt"
}
