package assets

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed images/*.png
var imagesFS embed.FS

// Embedded returns the textures compiled into the binary.
func Embedded() fs.FS {
	return imagesFS
}

// cleanAssetPath maps a logical texture name ("turret", "assets/images/turret.png",
// an absolute path) to its path inside an asset FS.
func cleanAssetPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if filepath.IsAbs(name) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			s = s[idx+len("/assets/"):]
		} else {
			s = filepath.Base(s)
		}
	}
	s = strings.TrimPrefix(s, "assets/")
	s = strings.TrimPrefix(s, "images/")
	if !strings.HasSuffix(strings.ToLower(s), ".png") {
		s += ".png"
	}
	return "images/" + s
}
