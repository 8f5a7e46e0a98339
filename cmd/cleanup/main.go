// Command cleanup detects and removes duplicate article files created
// before URL deduplication existed. It groups files by content hash and by
// title, keeps the newest copy in each group, and deletes the rest. By
// default it only reports; pass --execute to actually delete. It operates
// directly on the file tree, independent of the scraped URL ledger.
package main

import (
	"crypto/md5"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jessevdk/go-flags"
)

type options struct {
	ArticlesDir string `long:"articles-dir" env:"FFA_ARTICLES_DIR" default:"scraped_articles" description:"Root directory for scraped article records"`
	Execute     bool   `long:"execute" description:"Actually delete duplicate files (default is a dry run)"`
}

// fileEntry is one article file with the metadata needed for duplicate
// grouping.
type fileEntry struct {
	path    string
	relPath string
	size    int64
	modTime int64 // unix seconds
}

func main() {
	log.SetFlags(log.LstdFlags)

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if opts.Execute {
		fmt.Println("DUPLICATE CLEANUP (EXECUTING)")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("This will actually delete duplicate files!")
	} else {
		fmt.Println("DUPLICATE CLEANUP (DRY RUN)")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println("This will show what would be deleted without actually deleting files.")
		fmt.Println("Add --execute to actually perform the cleanup.")
	}
	fmt.Println()

	contentDups, titleDups, total := findDuplicates(opts.ArticlesDir)
	fmt.Printf("Scanned %d article files\n\n", total)

	if len(contentDups) == 0 && len(titleDups) == 0 {
		fmt.Println("No duplicates to clean up.")
		return
	}

	cleanDuplicates(opts.ArticlesDir, contentDups, titleDups, !opts.Execute)
}

// findDuplicates walks the article tree grouping files by MD5 content hash
// and by title. Only groups with more than one member are returned.
func findDuplicates(articlesDir string) (map[string][]fileEntry, map[string][]fileEntry, int) {
	hashGroups := make(map[string][]fileEntry)
	titleGroups := make(map[string][]fileEntry)
	total := 0

	if _, err := os.Stat(articlesDir); os.IsNotExist(err) {
		fmt.Printf("Articles directory %q not found.\n", articlesDir)
		return nil, nil, 0
	}

	err := filepath.WalkDir(articlesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		total++

		info, err := d.Info()
		if err != nil {
			log.Printf("WARN: Error reading %s: %v", path, err)
			return nil
		}
		relPath, relErr := filepath.Rel(articlesDir, path)
		if relErr != nil {
			relPath = path
		}
		entry := fileEntry{
			path:    path,
			relPath: relPath,
			size:    info.Size(),
			modTime: info.ModTime().Unix(),
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("WARN: Error reading %s: %v", path, err)
			return nil
		}
		hash := fmt.Sprintf("%x", md5.Sum(data))
		hashGroups[hash] = append(hashGroups[hash], entry)

		title := articleTitle(data)
		titleGroups[title] = append(titleGroups[title], entry)
		return nil
	})
	if err != nil {
		log.Printf("WARN: Error walking articles directory: %v", err)
	}

	contentDups := make(map[string][]fileEntry)
	for hash, files := range hashGroups {
		if len(files) > 1 {
			contentDups[hash] = files
		}
	}
	titleDups := make(map[string][]fileEntry)
	for title, files := range titleGroups {
		if len(files) > 1 {
			titleDups[title] = files
		}
	}

	return contentDups, titleDups, total
}

// articleTitle reads the Title header line of a persisted record.
func articleTitle(data []byte) string {
	firstLine, _, _ := strings.Cut(string(data), "\n")
	if strings.HasPrefix(firstLine, "Title: ") {
		return strings.TrimPrefix(firstLine, "Title: ")
	}
	return "Unknown"
}

// cleanDuplicates reports or deletes duplicates. Content-hash duplicates
// are exact copies: everything but the newest goes. Title duplicates are
// treated more conservatively: a file is deleted only when its size is
// within 10% of the kept file and it is at least a minute older.
func cleanDuplicates(articlesDir string, contentDups, titleDups map[string][]fileEntry, dryRun bool) {
	fmt.Println("\nCLEANUP PLAN")
	fmt.Println(strings.Repeat("=", 50))

	totalToDelete := 0
	var totalBytes int64

	for _, hash := range sortedKeys(contentDups) {
		files := contentDups[hash]
		sortNewestFirst(files)
		keep, rest := files[0], files[1:]

		fmt.Printf("\nContent Hash %.12s...\n", hash)
		fmt.Printf("  KEEP: %s\n", keep.relPath)
		for _, entry := range rest {
			totalToDelete++
			totalBytes += entry.size
			removeOrReport(entry, dryRun)
		}
	}

	for _, title := range sortedKeys(titleDups) {
		files := titleDups[title]
		sortNewestFirst(files)
		keep := files[0]

		var doomed []fileEntry
		for _, entry := range files[1:] {
			sizeDiff := float64(abs64(entry.size-keep.size)) / float64(keep.size)
			ageDiff := keep.modTime - entry.modTime
			if sizeDiff < 0.1 && ageDiff > 60 {
				doomed = append(doomed, entry)
			}
		}
		if len(doomed) == 0 {
			continue
		}

		display := title
		if len(display) > 60 {
			display = display[:60] + "..."
		}
		fmt.Printf("\nTitle: %s\n", display)
		fmt.Printf("  KEEP: %s\n", keep.relPath)
		for _, entry := range doomed {
			totalToDelete++
			totalBytes += entry.size
			removeOrReport(entry, dryRun)
		}
	}

	fmt.Println("\nSUMMARY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Files to delete: %d\n", totalToDelete)
	fmt.Printf("Space to save: %.1f KB\n", float64(totalBytes)/1024)

	if dryRun {
		fmt.Println("\nThis was a DRY RUN - no files were actually deleted.")
		fmt.Println("Run with --execute to actually delete the files.")
	} else {
		fmt.Printf("\nCleanup completed! Deleted %d duplicate files.\n", totalToDelete)
	}
}

func removeOrReport(entry fileEntry, dryRun bool) {
	if dryRun {
		fmt.Printf("  DELETE: %s (%d bytes)\n", entry.relPath, entry.size)
		return
	}
	if err := os.Remove(entry.path); err != nil {
		fmt.Printf("  ERROR deleting %s: %v\n", entry.path, err)
		return
	}
	fmt.Printf("  DELETED: %s (%d bytes)\n", entry.relPath, entry.size)
}

func sortNewestFirst(files []fileEntry) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime > files[j].modTime
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
