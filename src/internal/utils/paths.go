package utils

import (
	"path/filepath"
	"strings"
)

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

// UserFilePath builds the path of a per-user file: root/user/relative.
//
// relative is always treated as relative to the user directory, even when it
// starts with a slash ("/.spamassassin/whitelist"), and may not escape it.
func UserFilePath(root, user, relative string) string {
	userDir := filepath.Join(root, user)
	rel := filepath.Clean("/" + strings.TrimLeft(relative, "/"))
	return filepath.Join(userDir, rel)
}
