package config

// Extensions returns the allowed file extensions, lowercase and without dots.
func Extensions() []string {
	return []string{
		"jpg", "jpeg", "png", "gif", "py", "txt", "mp3", "mp4", "pdf", "json", "docx", "js",
		"html", "css", "ts",
	}
}

// Blacklist returns the substrings that disqualify a path.
func Blacklist() []string {
	return []string{".wrangler", ".git", "node_modules", ".vscode", ".rustup"}
}

// UserFolders returns the folders under the home directory scanned when
// small-scan mode is off.
func UserFolders() []string {
	return []string{"Documents", "Downloads", "Pictures", "Music", "Videos", "Desktop"}
}

// DriveCandidates returns the drive roots probed by --drives. C: is left
// out because the home directory lives there.
func DriveCandidates() []string {
	return []string{
		"A:/", "B:/", "D:/", "E:/", "F:/", "G:/", "H:/", "I:/", "J:/", "K:/", "L:/", "M:/", "N:/",
		"O:/", "P:/", "Q:/", "R:/", "S:/", "T:/", "U:/", "V:/", "W:/", "X:/", "Y:/", "Z:/",
	}
}
