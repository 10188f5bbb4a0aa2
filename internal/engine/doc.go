// Package engine contains the core of secretguard: the filename and content
// matching passes, and the mode driver that obtains candidate files from a
// Collaborator and hands results to a report.Printer. It never invokes git
// itself. External consumers should use the facade in pkg/core.
package engine
