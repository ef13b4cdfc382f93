// Package classify scores filesystem entries by how safe they are to keep
// or delete. Evaluation is an ordered cascade: the first matching rule
// decides, later rules are never consulted. That ordering is the whole
// contract — a protected file that also looks like a temp file must stay
// protected.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/goyan/diskdash/internal/types"
)

// input carries the pre-normalized fields every rule matches against.
type input struct {
	name  string // lower-cased last path component
	path  string // lower-cased, forward slashes
	isDir bool
	size  int64
}

// rule is one predicate→outcome pair in the cascade.
type rule struct {
	name    string
	matches func(in input) bool
	outcome func(in input) (types.Category, float64)
}

func fixed(cat types.Category, score float64) func(input) (types.Category, float64) {
	return func(input) (types.Category, float64) { return cat, score }
}

// cascade is evaluated top to bottom, first match wins. The final rule
// matches everything, so evaluation is total.
var cascade = []rule{
	{
		name: "protected",
		matches: func(in input) bool {
			if protectedNames[in.name] || strings.HasPrefix(in.name, "$") {
				return true
			}
			for _, frag := range protectedPathFragments {
				if strings.Contains(in.path, frag) {
					return true
				}
			}
			return false
		},
		outcome: fixed(types.MustKeep, 100),
	},
	{
		name: "disposable",
		matches: func(in input) bool {
			for _, part := range disposableNameParts {
				if strings.Contains(in.name, part) {
					return true
				}
			}
			if strings.HasSuffix(in.name, ".tmp") || strings.HasSuffix(in.name, ".log") {
				return true
			}
			if strings.HasPrefix(in.name, "~$") {
				return true
			}
			for _, frag := range disposablePathFragments {
				if strings.Contains(in.path, frag) {
					return true
				}
			}
			return false
		},
		outcome: fixed(types.Disposable, 5),
	},
	{
		name: "system",
		matches: func(in input) bool {
			ext := filepath.Ext(in.name)
			if systemExts[ext] {
				return true
			}
			return ext == ".exe" && strings.Contains(in.path, "windows")
		},
		outcome: fixed(types.System, 85),
	},
	{
		name:    "document",
		matches: fileExt(documentExts),
		outcome: fixed(types.Regular, 90),
	},
	{
		name:    "photo",
		matches: fileExt(photoExts),
		outcome: fixed(types.Regular, 95),
	},
	{
		name:    "video",
		matches: fileExt(videoExts),
		outcome: func(in input) (types.Category, float64) {
			// Very large videos skew disposable: downloads, raw captures.
			if in.size > sizeOneGB {
				return types.Regular, 70
			}
			return types.Regular, 85
		},
	},
	{
		name:    "audio",
		matches: fileExt(audioExts),
		outcome: fixed(types.Regular, 80),
	},
	{
		name:    "code",
		matches: fileExt(codeExts),
		outcome: fixed(types.Regular, 85),
	},
	{
		name:    "archive",
		matches: fileExt(archiveExts),
		outcome: func(in input) (types.Category, float64) {
			// Bigger archives are more likely leftovers of an extraction.
			switch {
			case in.size >= sizeOneGB:
				return types.Regular, 30
			case in.size >= sizeHundredMB:
				return types.Regular, 45
			default:
				return types.Regular, 55
			}
		},
	},
	{
		name:    "disk image",
		matches: fileExt(diskImageExts),
		outcome: fixed(types.Regular, 25),
	},
	{
		name:    "installer",
		matches: fileExt(installerExts),
		outcome: func(in input) (types.Category, float64) {
			for _, frag := range downloadsPathFragments {
				if strings.Contains(in.path, frag) {
					return types.Regular, 35
				}
			}
			return types.Regular, 60
		},
	},
	{
		name: "backup",
		matches: func(in input) bool {
			if in.isDir {
				return false
			}
			return strings.HasSuffix(in.name, ".bak") ||
				strings.HasSuffix(in.name, ".old") ||
				strings.Contains(in.name, "backup")
		},
		outcome: fixed(types.Regular, 40),
	},
	{
		name: "directory",
		matches: func(in input) bool {
			return in.isDir
		},
		outcome: func(in input) (types.Category, float64) {
			switch {
			case buildDirNames[in.name]:
				return types.Regular, 30
			case mediaDirNames[in.name]:
				return types.Regular, 95
			case downloadsDirNames[in.name]:
				return types.Regular, 50
			default:
				return types.Regular, 65
			}
		},
	},
	{
		name: "fallback",
		matches: func(input) bool {
			return true
		},
		outcome: func(in input) (types.Category, float64) {
			switch {
			case in.size >= sizeFiveHundredMB:
				return types.Regular, 45
			case in.size >= sizeHundredMB:
				return types.Regular, 55
			default:
				return types.Regular, 60
			}
		},
	},
}

// fileExt builds a predicate matching regular files whose extension is in
// the given set.
func fileExt(exts map[string]bool) func(input) bool {
	return func(in input) bool {
		if in.isDir {
			return false
		}
		return exts[filepath.Ext(in.name)]
	}
}

// Classify assigns a category and a 0-100 usefulness score to a filesystem
// entry. It is a pure function of its arguments: identical inputs always
// produce identical outputs, never fails, and performs no I/O.
func Classify(path, name string, isDir bool, size int64) (types.Category, float64) {
	in := input{
		name:  strings.ToLower(name),
		path:  strings.ToLower(strings.ReplaceAll(path, `\`, "/")),
		isDir: isDir,
		size:  size,
	}
	for _, r := range cascade {
		if r.matches(in) {
			return r.outcome(in)
		}
	}
	// Unreachable: the fallback rule matches everything.
	return types.Unknown, 0
}

// ClassifyEntry is a convenience wrapper over Classify for an Entry.
func ClassifyEntry(e types.Entry) (types.Category, float64) {
	return Classify(e.Path, e.Name, e.IsDir, e.Size)
}
