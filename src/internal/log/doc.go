// Package log provides simple leveled logging for spamlists.
//
// Console output is coloured and split between stdout and stderr like any
// interactive tool. In addition, a log file sink can be attached with SetFile
// or OpenFile: every record is then appended to the file, rendered from a
// format string that uses %(name)s placeholders:
//
//	[%(levelname)s:%(name)s:%(asctime)s]: %(message)s
//
// Record writes to the file only, for messages the caller has already printed
// in a user-facing form (operation summaries).
package log
