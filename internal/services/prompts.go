package services

import (
	"encoding/json"
	"fmt"

	"celebrationgarden/internal/domain"
)

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func buildModerationPrompt(inv domain.Invitation, entries []domain.ScrapbookEntry) string {
	return fmt.Sprintf(`You are moderating and categorizing scrapbook entries for a wedding/event scrapbook. Perform BOTH tasks:

1. CONTENT MODERATION: Filter out any entries with abusive, inappropriate, hateful, or offensive content. Only include appropriate, positive messages.

2. RELATION CATEGORIZATION: Organize the filtered entries into categories based on their relation field. Use the invitation context to better understand relationships:
   - friends: All friend entries (Bride's Friend, Groom's Friend, Mutual Friend, Best Man, Maid of Honor, etc.)
   - closeRelatives: Immediate family (Mom, Dad, Mother, Father, Grandmother, Grandfather - for both Bride and Groom)
   - extendedFamily: Extended family (Uncle, Aunt, Cousin, etc.)
   - colleagues: Work-related (Colleague, Coworker, etc.)
   - others: Everything else

IMPORTANT RULES:
- Do NOT modify or rewrite any messages - use them exactly as provided
- Do NOT change entry IDs, names, relations, or any other fields
- Return ONLY valid JSON, no explanations or markdown
- Include ALL appropriate entries in categorized_entries (don't skip any)
- Use invitation context to better categorize relations (e.g., "Mom" could be Bride's or Groom's mom based on event title)

Invitation context: %s
All entries: %s

Return JSON in this exact format:
{
  "filtered_entries": [Entry, Entry, ...],
  "categorized_entries": {
    "friends": [Entry, Entry, ...],
    "closeRelatives": [Entry, Entry, ...],
    "extendedFamily": [Entry, Entry, ...],
    "colleagues": [Entry, Entry, ...],
    "others": [Entry, Entry, ...]
  }
}`, mustJSON(inv), mustJSON(entries))
}

func buildHighlightsPrompt(inv domain.Invitation, entries []domain.ScrapbookEntry) string {
	return fmt.Sprintf(`You are extracting highlights from scrapbook entries for a wedding/event scrapbook.

Identify the best entries for highlights:
   - funny: Top 3-5 entries with humorous, lighthearted, or funny messages (appropriate humor only)
   - secret: Top 3-5 entries with heartwarming, revealing, or touching messages (positive and meaningful)

IMPORTANT RULES:
- Do NOT modify or rewrite any messages - use them exactly as provided
- Do NOT change entry IDs, names, relations, or any other fields
- Return ONLY valid JSON, no explanations or markdown
- Select entries from the provided list only

Invitation context: %s
All entries: %s

Return JSON in this exact format:
{
  "funny": [Entry, Entry, ...],
  "secret": [Entry, Entry, ...]
}`, mustJSON(inv), mustJSON(entries))
}

func buildOrderingPrompt(c domain.CategorizedEntries) string {
	return fmt.Sprintf(`You are ordering scrapbook entries for optimal visual balance on a page.

For each category, order entries to create visual rhythm:
   - Alternate between entries with images and without images
   - Vary message lengths (mix short, medium, long messages - avoid clustering all long messages together)
   - Create a natural visual flow across the page
   - Consider visual weight: entries with images and long messages have more visual weight

IMPORTANT RULES:
- Return ONLY valid JSON, no explanations or markdown
- Return an ordered array of entry IDs for each category
- Include ALL entry IDs from each category (don't skip any)
- Order should optimize for visual balance and variety

Categorized entries: %s

Return JSON in this exact format:
{
  "friends": {"ordered_ids": [3, 7, 2]},
  "closeRelatives": {"ordered_ids": [5, 12, 8]},
  "extendedFamily": {"ordered_ids": [10, 15, 11]},
  "colleagues": {"ordered_ids": [20, 18, 22]},
  "others": {"ordered_ids": [25, 27, 24]}
}`, mustJSON(c))
}
