package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks whether the operation would succeed without performing it.
// Validation may have idempotent side effects (creating parent directories).
//
// Execute performs the actual operation and should only run after Validate
// succeeds.
//
// Description returns a human-readable summary for terminal output,
// e.g. "Write hlffi_monolithic.vcxproj (214 files, 48213 bytes)".
type Operation interface {
	Validate(ctx context.Context) error
	Execute(ctx context.Context) error
	Description() string
}

// ReplaceFileOp writes a file with overwrite semantics: whatever exists at
// Path is fully replaced. The generated descriptor is tool-owned output, so
// there is no conflict to resolve.
//
// When the existing file content hashes equal to the new content, Execute
// skips the physical write. Reruns over unchanged inputs stay byte-identical
// without touching the file's mtime.
type ReplaceFileOp struct {
	Path    string      // Output file path
	Content []byte      // Rendered content, line endings already final
	Mode    fs.FileMode // File permissions (e.g., 0644)

	upToDate bool
}

func (op *ReplaceFileOp) Validate(ctx context.Context) error {
	dir := filepath.Dir(op.Path)

	// Create parent directory (side effect, but idempotent)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *ReplaceFileOp) Execute(ctx context.Context) error {
	existing, err := os.ReadFile(op.Path)
	if err == nil && xxh3.Hash(existing) == xxh3.Hash(op.Content) {
		op.upToDate = true
		return nil
	}

	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *ReplaceFileOp) Description() string {
	if op.upToDate {
		return fmt.Sprintf("Unchanged %s (already up to date)", op.Path)
	}
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}

// UpToDate reports whether the last Execute found the file already current.
func (op *ReplaceFileOp) UpToDate() bool {
	return op.upToDate
}
