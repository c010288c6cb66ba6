// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package llm

import (
	"fmt"

	"github.com/goccy/go-json"
	"google.golang.org/genai"
)

// TextExtractor pulls plain text out of a provider response.
// ok is false when the response carries no text.
type TextExtractor interface {
	ExtractText(resp *genai.GenerateContentResponse) (text string, ok bool)
}

// TextExtractorFunc adapts a function to TextExtractor.
type TextExtractorFunc func(resp *genai.GenerateContentResponse) (string, bool)

// ExtractText implements TextExtractor.
func (f TextExtractorFunc) ExtractText(resp *genai.GenerateContentResponse) (string, bool) {
	return f(resp)
}

// CandidateText concatenates the text parts of the first candidate.
var CandidateText TextExtractor = TextExtractorFunc(func(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	text := resp.Text()
	return text, text != ""
})

// RenderResponse returns a deterministic string for a response that exposes
// no text: its JSON encoding, or a %+v rendering if encoding fails.
func RenderResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return "null"
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf("%+v", *resp)
	}
	return string(b)
}

// responseText extracts text with ex, falling back to RenderResponse.
func responseText(ex TextExtractor, resp *genai.GenerateContentResponse) string {
	if text, ok := ex.ExtractText(resp); ok {
		return text
	}
	return RenderResponse(resp)
}
