// Package errors provides structured, actionable error messages for the
// vjsx command line tool.
//
// The node builder itself never fails; errors only arise while loading
// configuration or decoding element descriptor files. Each error carries a
// code, a category, and optionally a source location, a suggestion and a
// wrapped cause.
//
// # Error Codes
//
//   - E100-E119: descriptor errors (missing file, bad syntax, bad shape)
//   - E120-E139: configuration errors
//   - E140-E159: CLI usage errors
//
// # Usage
//
//	err := errors.New("E102").
//	    WithLocation("button.yaml", 4, 3).
//	    WithSuggestion("attrs must be a mapping of names to values")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E102: Invalid descriptor shape
//	//
//	//   button.yaml:4:3
//	//
//	//       3 │ tag: button
//	//   →   4 │ attrs: [onClick]
//	//         │   ^
//	//       5 │ children: Save
//	//
//	//   Hint: attrs must be a mapping of names to values
package errors
