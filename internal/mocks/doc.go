// Package mocks provides centralized mock implementations for testing.
//
// Each mock records its calls (guarded by a mutex so parallel subtests can
// share one instance) and returns either fixed values or the result of an
// overriding function field:
//
//	completer := &mocks.MockCompleter{
//	    CompleteFn: func(ctx context.Context, prompt string) (string, error) {
//	        return `{"headline":"x"}`, nil
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Add a Reset method for the call tracking state
package mocks
