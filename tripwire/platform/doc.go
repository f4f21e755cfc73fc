// Package platform exposes compiler and operating-system capability flags
// fixed at build time through build constraints. Exactly one compiler flag
// and exactly one OS flag is true in any build.
package platform
