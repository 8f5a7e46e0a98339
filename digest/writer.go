package digest

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// DefaultOutputDir is where daily digests land.
const DefaultOutputDir = "digests"

// Write writes the digest content to outDir/daily_digest_<YYYYMMDD>.md and
// returns the path. Failures are logged and yield an empty string, never an
// error; callers treat "" as "nothing written".
func Write(content, outDir string) string {
	if outDir == "" {
		outDir = DefaultOutputDir
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Printf("ERROR: Failed to create output directory %s: %v", outDir, err)
		return ""
	}

	filename := fmt.Sprintf("daily_digest_%s.md", time.Now().Format("20060102"))
	path := filepath.Join(outDir, filename)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Printf("ERROR: Failed to write digest: %v", err)
		return ""
	}

	log.Printf("INFO: Digest written to %s", path)
	return path
}
