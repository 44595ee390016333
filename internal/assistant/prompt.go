// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package assistant

import (
	"strconv"
	"strings"

	"github.com/tomtom215/abiflix/internal/models"
)

const instructionHead = `You are Abiflix AI, a helpful streaming assistant.
Here is the current catalog of available movies and series on Abiflix (IDs are in brackets):
`

const instructionTail = `
Your goal is to help users find content to watch based on their mood, preferences, or random requests.
Be concise, friendly, and enthusiastic.

IMPORTANT: If you recommend specific content that exists in the catalog above, you MUST append their IDs in a JSON array at the very end of your message using this specific format:
[[RECOMMENDED:["id1", "id2"]]]

Example response:
"Based on your request, I recommend Cyber Runner 2077 because it fits the sci-fi action genre perfectly.
[[RECOMMENDED:["1"]]]"
`

// CatalogLine renders one title for the system instruction:
//
//	[ID:2] Seoul Nights (series, 2023, Korea): Drama, Romance. Rated 9.2/10.
func CatalogLine(t *models.Title) string {
	var b strings.Builder
	b.WriteString("[ID:")
	b.WriteString(t.ID)
	b.WriteString("] ")
	b.WriteString(t.Title)
	b.WriteString(" (")
	b.WriteString(string(t.Type))
	b.WriteString(", ")
	b.WriteString(strconv.Itoa(t.ReleaseYear))
	b.WriteString(", ")
	b.WriteString(t.Country)
	b.WriteString("): ")
	b.WriteString(strings.Join(t.Genres, ", "))
	b.WriteString(". Rated ")
	b.WriteString(strconv.FormatFloat(t.Rating, 'f', -1, 64))
	b.WriteString("/10.")
	return b.String()
}

// BuildSystemInstruction embeds the catalog in the assistant persona and the
// recommendation marker rules.
func BuildSystemInstruction(titles []models.Title) string {
	lines := make([]string, len(titles))
	for i := range titles {
		lines[i] = CatalogLine(&titles[i])
	}
	return instructionHead + strings.Join(lines, "\n") + "\n" + instructionTail
}
