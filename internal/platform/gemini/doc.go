// Package gemini adapts Google's Gemini API to generation.Completer.
//
// It is the alternative upstream selected with llm.provider=gemini. Requests
// ask for an application/json response so the model answers with the bare
// JSON object the career prompt describes; the generation pipeline treats the
// returned text exactly like OpenAI message content.
//
// Content blocked by the safety filters is reported as an error, since the
// model produced nothing usable and the client should see a generation
// failure rather than a parse failure.
package gemini
