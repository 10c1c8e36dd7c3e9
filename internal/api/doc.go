// Package api handles incoming HTTP requests for the generation exchange:
// request decoding and validation, delegation to a generation.Generator, and
// response formatting. Successful generations are answered with the model's
// JSON byte for byte; failures with {"error": message} where message is one
// of the client-visible generation messages.
package api
