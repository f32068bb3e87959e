// Package pkg provides the core libraries for picross.
//
// # Overview
//
// Picross reads stages of nonogram levels and derives the clues that define
// each puzzle. The pkg directory is organized into these areas:
//
//  1. [nonogram] - Domain logic (grids, transpose, hints, block rendering)
//  2. [stage] - Input (JSON5 stage documents, schema validation, lookup)
//  3. [pipeline] - Orchestration (parse → select → render → hints)
//  4. [config], [errors], [observability], [buildinfo] - Supporting packages
//
// # Architecture
//
// The typical data flow:
//
//	JSON5 stage document
//	         ↓
//	    [stage] package (parse + validate)
//	         ↓
//	    select one level by key
//	         ↓
//	    [nonogram] package (render + hints)
//	         ↓
//	    block drawing and hint dump
package pkg
