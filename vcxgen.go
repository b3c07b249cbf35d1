// Package vcxgen generates monolithic Visual Studio project descriptors
// from hand-declared source lists and pattern-discovered vendor trees.
package vcxgen

// Version is the current vcxgen release version.
const Version = "0.3.0"
