package summarize

// Export internal functions for testing.

// ChatCompleter exports chatCompleter for mocks.
type ChatCompleter = chatCompleter

// ContentGenerator exports contentGenerator for mocks.
type ContentGenerator = contentGenerator

// ClassifyStatus exports classifyStatus for testing.
var ClassifyStatus = classifyStatus

// ClassifyTransport exports classifyTransport for testing.
var ClassifyTransport = classifyTransport

// ClassifyOpenAIError exports classifyOpenAIError for testing.
var ClassifyOpenAIError = classifyOpenAIError

// ClassifyGeminiError exports classifyGeminiError for testing.
var ClassifyGeminiError = classifyGeminiError

// NewOpenAIGeneratorWithClient builds an OpenAIGenerator around a mock client.
func NewOpenAIGeneratorWithClient(c ChatCompleter, model string) *OpenAIGenerator {
	return &OpenAIGenerator{client: c, model: model}
}

// NewGeminiGeneratorWithClient builds a GeminiGenerator around a mock client.
func NewGeminiGeneratorWithClient(c ContentGenerator, model string) *GeminiGenerator {
	return &GeminiGenerator{client: c, model: model}
}
