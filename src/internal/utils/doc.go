// Package utils provides small helpers shared across spamlists: path
// resolution for configuration-relative and per-user files, file cleanup
// that logs instead of failing, and a shape check for list entries.
//
//	path := utils.UserFilePath("/home/mail/example.org", "alice", "/.spamassassin/whitelist")
//	// /home/mail/example.org/alice/.spamassassin/whitelist
//
//	utils.IsDomainPattern("*@example.com") // true
//	utils.IsDomainPattern("not a domain")  // false
package utils
