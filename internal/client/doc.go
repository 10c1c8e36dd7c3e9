// Package client is the caller side of the generation exchange.
//
// Client issues exactly one POST per Generate call and turns the endpoint's
// answer into a generation.Result or a *generation.Error whose message is the
// one the endpoint sent. Session layers the UI's single result slot on top:
// it validates input locally, and when submissions overlap only the most
// recent one may publish its outcome.
package client
