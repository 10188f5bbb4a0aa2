// Package secretguard provides the command-line interface: one subcommand
// per scan mode plus the gitignore audit, catalog listing and version.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/secretguard/cmd/secretguard"
//	func main() { secretguard.Execute() }
package secretguard
