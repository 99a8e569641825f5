// Package surface defines the canonical registry keys and the method tokens
// used to prefix errors.
package surface

//-----------------------------------------------------------------------------
// Method name constants, used to prefix errors with their origin.
//-----------------------------------------------------------------------------

const (
	// MethodGet is the canonical name for Registry.Get.
	MethodGet = "Get"
	// MethodDescriptors is the canonical name for Registry.Descriptors.
	MethodDescriptors = "Descriptors"
	// MethodBuild is the canonical name for Registry.Build and Entry.Build.
	MethodBuild = "Build"
	// MethodNewRegistry is the canonical name for NewRegistry.
	MethodNewRegistry = "NewRegistry"
)

//-----------------------------------------------------------------------------
// Registry keys of the built-in families, in declaration order.
//-----------------------------------------------------------------------------

const (
	KeyMountains         = "mountains"
	KeySinCosSumWave     = "sinCosSumWave"
	KeySinCosProductWave = "sinCosProductWave"
	KeySinProductWave    = "sinProductWave"
	KeySaddle            = "saddle"
	KeySphere            = "sphere"
	KeyTorus             = "torus"
	KeyWave              = "wave"
	KeyDiagonalWave      = "diagonalWave"
	KeyInterference      = "interference"
	KeyGaussian          = "gaussian"
	KeyPerlinTerrain     = "perlinTerrain"
	KeyRandomTerrain     = "randomTerrain"
)
