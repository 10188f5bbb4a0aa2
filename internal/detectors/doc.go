// Package detectors holds the catalog of sensitive-filename patterns, labelled
// content patterns and ignore-audit globs used by secretguard. The tables are
// compiled once at package initialization and never mutated afterwards.
package detectors
