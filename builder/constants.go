// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by all builders, ensuring
// consistent error prefixes and validation bounds.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNewIndexed is the canonical name for the Indexed constructor.
	MethodNewIndexed = "NewIndexed"
	// MethodNewVectorBuilder is the canonical name for the vector builder constructors.
	MethodNewVectorBuilder = "NewVectorBuilder"
	// MethodNewMatrixBuilder is the canonical name for the matrix builder constructors.
	MethodNewMatrixBuilder = "NewMatrixBuilder"
	// MethodSet is the canonical name for Set/With.
	MethodSet = "Set"
	// MethodGet is the canonical name for Get.
	MethodGet = "Get"
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// MinSize is the smallest capacity (and smallest row/column count) a builder
// accepts. Vectors and matrices are never empty.
const MinSize = 1

// FirstIndex is the lowest valid index; all builders are 1-indexed.
const FirstIndex = 1
