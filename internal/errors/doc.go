// Package errors provides coded, actionable errors for the slider CLI.
//
// Each code maps to a registered template with a category, a short message
// and a longer explanation:
//
//   - E100-E119: configuration (slider.json missing, malformed or invalid)
//   - E120-E129: command line (bad state flags, server failure)
//   - E130-E139: static export
//
// # Usage
//
//	err := errors.New(errors.CodeConfigSyntax).
//	    WithLocation("slider.json", 4, 17).
//	    WithSuggestion("Quote string values")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Malformed slider.json
//	//
//	//   slider.json:4:17
//	//
//	//       2 │   "slider": {
//	//       3 │     "value": 30,
//	//   →   4 │     "orientation": vertical
//	//         │                    ^
//	//       5 │   }
//	//
//	//   Hint: Quote string values
package errors
