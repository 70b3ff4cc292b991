package ipo

//-----------------------------------------------------------------------------
// Domain limits
//-----------------------------------------------------------------------------

// MinParameters is the smallest meaningful number of factors: pairwise
// coverage needs at least two dimensions.
const MinParameters = 2

// MaxParameters is the configured ceiling on the number of factors.
// Symbolic rendering names factors A..Z, hence 26.
const MaxParameters = 26

// MinLevels is the smallest allowed number of levels for a single factor.
const MinLevels = 1

// Placeholder marks an unresolved slot of a Run during vertical growth.
const Placeholder = -1

//-----------------------------------------------------------------------------
// Method names
//   used to prefix errors with the operation that produced them.
//-----------------------------------------------------------------------------

const (
	// MethodNewDomain is the canonical name for NewDomain.
	MethodNewDomain = "NewDomain"
	// MethodValue is the canonical name for Domain.Value.
	MethodValue = "Value"
	// MethodAdd is the canonical name for Constraints.Add.
	MethodAdd = "Add"
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodVerify is the canonical name for Verify.
	MethodVerify = "Verify"
)
