package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks content that did not come from disk (tests, stdin, init templates).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human readable position, both parts 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
