package classify

// Size thresholds for the graded rules. Decimal units, matching how the
// scores were originally calibrated.
const (
	sizeHundredMB     = 100_000_000
	sizeFiveHundredMB = 500_000_000
	sizeOneGB         = 1_000_000_000
)

// Names that must never be deleted regardless of any later rule.
var protectedNames = map[string]bool{
	"boot":                      true,
	"bootmgr":                   true,
	"bootnxt":                   true,
	"ntldr":                     true,
	"pagefile.sys":              true,
	"hiberfil.sys":              true,
	"swapfile.sys":              true,
	"system volume information": true,
}

// Path fragments (lower-cased, forward slashes) marking OS installation
// and vendor program trees.
var protectedPathFragments = []string{
	"windows/system32",
	"windows/syswow64",
	"program files",
	"programdata",
	"/system/library/",
}

// Transient-data markers in a name.
var disposableNameParts = []string{"temp", "cache", "tmp"}

// Path fragments that place an entry under a temp or cache tree.
var disposablePathFragments = []string{"/temp/", "/cache/", "/tmp/"}

var documentExts = map[string]bool{
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true, ".pdf": true, ".odt": true,
	".ods": true, ".rtf": true, ".txt": true, ".md": true,
}

var photoExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".tiff": true, ".heic": true, ".webp": true,
	".raw": true, ".cr2": true, ".nef": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mkv": true, ".avi": true, ".mov": true,
	".wmv": true, ".flv": true, ".webm": true, ".m4v": true,
}

var audioExts = map[string]bool{
	".mp3": true, ".flac": true, ".wav": true, ".aac": true,
	".ogg": true, ".m4a": true, ".wma": true,
}

var codeExts = map[string]bool{
	".go": true, ".rs": true, ".py": true, ".js": true, ".ts": true,
	".c": true, ".cpp": true, ".h": true, ".hpp": true, ".java": true,
	".rb": true, ".swift": true, ".cs": true, ".php": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true,
	".xml": true, ".ini": true, ".cfg": true, ".conf": true,
	".sh": true, ".sql": true, ".html": true, ".css": true,
}

var archiveExts = map[string]bool{
	".zip": true, ".rar": true, ".7z": true, ".tar": true,
	".gz": true, ".bz2": true, ".xz": true, ".tgz": true,
}

var diskImageExts = map[string]bool{
	".iso": true, ".dmg": true, ".img": true, ".vhd": true,
	".vhdx": true, ".qcow2": true, ".vmdk": true,
}

var installerExts = map[string]bool{
	".msi": true, ".pkg": true, ".deb": true, ".rpm": true,
	".appimage": true, ".bat": true, ".cmd": true, ".ps1": true,
	".vbs": true,
}

// Extensions of OS binaries and driver metadata.
var systemExts = map[string]bool{
	".sys": true, ".dll": true, ".inf": true, ".cat": true,
	".drv": true,
}

// Build output and dependency caches: big, regenerable.
var buildDirNames = map[string]bool{
	"node_modules": true, "target": true, "build": true,
	"dist": true, "out": true, "__pycache__": true,
	"venv": true, ".venv": true, ".gradle": true, ".m2": true,
	"derived_data": true, "deriveddata": true,
}

// Standard user media folders.
var mediaDirNames = map[string]bool{
	"documents": true, "pictures": true, "photos": true,
	"music": true, "videos": true, "movies": true, "desktop": true,
}

var downloadsDirNames = map[string]bool{
	"downloads": true, "download": true,
}

// Path fragments identifying a downloads-type location.
var downloadsPathFragments = []string{"/downloads/", "/download/"}
