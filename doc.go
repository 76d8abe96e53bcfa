// Package cclabel labels connected components in 2D pixel grids — give it
// any rectangular image and a definition of "foreground", get back the
// maximal connected groups of foreground pixels.
//
// 🚀 What is cclabel?
//
//	A small, policy-driven labeling library built from three pluggable parts:
//		• Pixel accessors: read a pixel from any image layout ([][]T, flat []T, *image.Gray, ...)
//		• Pixel classifiers: decide foreground vs background (bool, nonzero integer, threshold, ...)
//		• Connectivity: 4-neighbor (orthogonal) or 8-neighbor (with diagonals)
//
// ✨ Why choose cclabel?
//
//   - Minimal API – one Find call, functional options, clear naming
//   - Deterministic – labels assigned in row-major seed order, every time
//   - Pure Go – generic over pixel and image type, no cgo
//   - Extensible – custom accessors/classifiers are plain functions,
//     hooks (OnSeed, OnLabel…) observe the traversal
//
// Everything is organized under three subpackages:
//
//	grid/     — Coord and the dense LabelGrid used to mark visited pixels
//	pixel/    — Accessor and Classifier policies + built-ins
//	conncomp/ — Conn4/Conn8 neighbor generation and the component finder
//
// Quick ASCII example (4-connectivity):
//
//	X X .        component 0: (0,0) (0,1) (1,1)
//	. X .   →    component 1: (2,2)
//	. . X
//
// Dive into the package docs for contracts, complexity notes and examples.
//
//	go get github.com/pixelgrid/cclabel
package cclabel
