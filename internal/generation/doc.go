// Package generation implements the generation exchange: it turns a user's
// free-text career notes, a target role and a tone into a prompt for an
// upstream LLM completion model, and turns the model's JSON answer into a
// typed Result of LinkedIn bullets, a STAR story and a headline.
//
// The package defines the boundary types shared by the HTTP endpoint and the
// client adapter (Request, Result, Tone), the closed set of tagged error kinds
// (Error, Kind), and the Service pipeline behind the endpoint:
//
//	validate -> check credential -> build prompt -> call upstream
//	         -> parse output -> validate shape -> respond
//
// Upstream providers plug in through the Completer interface; the
// implementations live under internal/platform.
package generation
