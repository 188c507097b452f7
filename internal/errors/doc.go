// Package errors provides structured, actionable errors for featuregrid.
//
// Every application error has a code that maps to a registered template:
//
//	E1xx  config   featuregrid.json loading and validation
//	E2xx  catalog  catalog.hcl decoding and card registration
//	E3xx  builder  invalid selections and actions
//	E4xx  export   static export to a directory or S3
//	E5xx  server   sessions and the WebSocket protocol
//
// # Usage
//
//	err := errors.New("E302").
//	    WithDetailf("variant %q is not part of layout %q", id, layout).
//	    WithSuggestion("Pick one of: 2x2, 3x2, 4x2, 3x3")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E302: Unknown variant
//	//
//	//   variant "5x5" is not part of layout "classic-grid"
//	//
//	//   Hint: Pick one of: 2x2, 3x2, 4x2, 3x3
//
// Catalog errors carry the HCL source position:
//
//	errors.New("E201").WithLocation("catalog.hcl", 12, 5)
package errors
