package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mholt/archives"
)

// Bundle packs the state directory (tables, audit log and user files)
// into a gzip-compressed tar archive at outPath. The directory's
// contents sit at the archive root.
func Bundle(ctx context.Context, stateDir, outPath string) (err error) {
	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		stateDir: "",
	})
	if err != nil {
		return fmt.Errorf("failed to collect state files from %s: %w", stateDir, err)
	}

	out, err := os.Create(filepath.Clean(outPath))
	if err != nil {
		return fmt.Errorf("failed to create bundle %s: %w", outPath, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close bundle %s: %w", outPath, closeErr)
		}
	}()

	format := archives.CompressedArchive{
		Compression: archives.Gz{},
		Archival:    archives.Tar{},
	}
	if err := format.Archive(ctx, out, files); err != nil {
		return fmt.Errorf("failed to write bundle %s: %w", outPath, err)
	}

	return nil
}
