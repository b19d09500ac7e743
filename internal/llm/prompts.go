package llm

import _ "embed"

//go:embed prompts/extraction_v1.txt
var extractionPromptV1 string

// ExtractionPrompt returns the prompt template the extraction call sends
// ahead of the document text.
func ExtractionPrompt() string {
	return extractionPromptV1
}
