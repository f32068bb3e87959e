// Package stage reads picross stages: named collections of nonogram grids.
//
// # Format
//
// A stage is a JSON5 document whose top level is an object mapping level
// keys to grids. Each grid is an array of rows and each row an array of the
// integers 0 (empty) and 1 (filled). JSON5 relaxes JSON, so unquoted keys,
// comments and trailing commas are all accepted:
//
//	{
//	  // a small heart
//	  heart: [
//	    [0, 1, 0, 1, 0],
//	    [1, 1, 1, 1, 1],
//	    [0, 1, 1, 1, 0],
//	    [0, 0, 1, 0, 0],
//	  ],
//	  '101': [[1, 1, 0], [0, 1, 1], [1, 0, 1]],
//	}
//
// # Validation
//
// [Parse] checks the decoded document against this schema immediately and
// reports the first violation with its position. Syntax errors have code
// PARSE_ERROR, a wrong overall structure INVALID_INPUT, and cells other than
// 0 or 1 INVALID_CELL. Rows of unequal length are accepted here; hint
// calculation rejects them later.
//
// # Lookup
//
// [Stage.Lookup] reports presence explicitly and [Stage.Level] turns an
// absent key into a LEVEL_NOT_FOUND error, so a missing level never flows
// into rendering or hint calculation.
//
// The whole input is buffered before parsing. Stages are small documents and
// JSON5 has no useful streaming form.
package stage
