// Package lists manages the per-user whitelist and blacklist files.
//
// Every directory under the mail root is a user, and every user owns two flat
// list files (one entry per line) at configured paths inside its directory.
// A Manager adds entries to or removes entries from those files for all users
// or for a subset chosen with an allow/deny Filter.
//
// # Adding
//
// Add reads each list file, reports entries that are already present as
// repeated, and appends the rest in one write. Running it twice leaves the
// file unchanged the second time.
//
// # Removing
//
// Remove streams each list file into a temporary file in the same directory,
// leaving out the given entries, copies the permission bits and renames the
// temporary file over the original.
//
// # Example Usage
//
//	mgr, err := lists.NewManager(cfg, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	reports, err := mgr.Add(
//	    lists.Lists{lists.Whitelist: {"*@example.com"}},
//	    lists.Filter{lists.FilterDeny: {"postmaster"}},
//	)
//
// Each user gets one summary covering both lists; it is printed and recorded
// in the log file.
package lists
