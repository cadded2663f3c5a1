package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrUnsafeOutputDir is returned when replacing the output directory would
// delete the working directory, one of its ancestors, or the filesystem root.
var ErrUnsafeOutputDir = errors.New("refusing to replace output directory")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// ReplaceDir recreates dir so that it holds exactly files.
//
// The files are written to a staging directory next to dir first. Only when
// that succeeds is the previous dir moved aside, the staging directory
// renamed into place and the old content removed. On any failure the staging
// directory is removed and the previous dir is left (or put back) as it was.
func ReplaceDir(dir string, files []GeneratedFile) (err error) {
	dir = filepath.Clean(dir)

	if err := checkReplaceable(dir); err != nil {
		return err
	}

	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, dirPerm); err != nil {
		return fmt.Errorf("creating parent of output directory: %w", err)
	}

	staging, err := os.MkdirTemp(parent, "."+filepath.Base(dir)+".staging-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.RemoveAll(staging)
		}
	}()

	if err = os.Chmod(staging, dirPerm); err != nil {
		return fmt.Errorf("preparing staging directory: %w", err)
	}

	if err = WriteFiles(files, staging); err != nil {
		return err
	}

	backup := ""

	switch info, statErr := os.Lstat(dir); {
	case statErr == nil && !info.IsDir():
		return fmt.Errorf("%w: %s exists and is not a directory", ErrUnsafeOutputDir, dir)
	case statErr == nil:
		backup = staging + ".old"
		if err = os.Rename(dir, backup); err != nil {
			return fmt.Errorf("moving previous output aside: %w", err)
		}
	case !errors.Is(statErr, os.ErrNotExist):
		return fmt.Errorf("inspecting output directory: %w", statErr)
	}

	if err = os.Rename(staging, dir); err != nil {
		if backup != "" {
			_ = os.Rename(backup, dir)
		}

		return fmt.Errorf("moving output into place: %w", err)
	}

	if backup != "" {
		if rmErr := os.RemoveAll(backup); rmErr != nil {
			return fmt.Errorf("removing previous output: %w", rmErr)
		}
	}

	return nil
}

// checkReplaceable rejects the filesystem root and any directory containing
// the working directory.
func checkReplaceable(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving output directory: %w", err)
	}

	if filepath.Dir(abs) == abs {
		return fmt.Errorf("%w: %s is the filesystem root", ErrUnsafeOutputDir, dir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	if Contains(abs, wd) {
		return fmt.Errorf("%w: %s contains the working directory", ErrUnsafeOutputDir, dir)
	}

	return nil
}

// Contains reports whether path is dir or lies inside it. Both must be absolute.
func Contains(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
