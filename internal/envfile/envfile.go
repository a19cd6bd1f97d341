// Package envfile updates a single KEY=VALUE entry in a line oriented
// configuration file such as .env, leaving every other line untouched.
//
// The update is a read-modify-write of the whole file. It is not atomic and
// takes no lock: concurrent writers to the same file race and the last one
// wins. A failed write can leave the file truncated.
package envfile

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	kerrors "github.com/echosistema/ironmonger/internal/errors"
	"github.com/echosistema/ironmonger/internal/secret"
)

const (
	// DefaultPath is the file written when no path is given.
	DefaultPath = ".env"

	// DefaultKey is the key written when no key name is given.
	DefaultKey = "APP_SECRET"
)

// Updater upserts one key's value in a configuration file.
type Updater interface {
	Write(path, key string, value secret.AppSecret) error
}

// FileUpdater is the filesystem backed Updater.
type FileUpdater struct {
	// Perm is used when the file has to be created. Defaults to 0600.
	Perm fs.FileMode
}

// NewFileUpdater returns an Updater that creates missing files with 0600.
func NewFileUpdater() *FileUpdater {
	return &FileUpdater{Perm: 0600}
}

// Write sets key to value in the file at path, creating the file if needed.
//
// Returns a *errors.FileError wrapping the OS error on any I/O failure.
func (u *FileUpdater) Write(path, key string, value secret.AppSecret) error {
	if err := u.ensureExists(path); err != nil {
		return err
	}

	lines, err := ReadLines(path)
	if err != nil {
		return err
	}

	return WriteLines(path, UpsertLines(lines, key, value.Value()))
}

func (u *FileUpdater) ensureExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return &kerrors.FileError{Op: "stat", Path: path, Err: err}
	}

	perm := u.Perm
	if perm == 0 {
		perm = 0600
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return &kerrors.FileError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &kerrors.FileError{Op: "create", Path: path, Err: err}
	}
	return nil
}

// ReadLines returns the file's lines with line terminators stripped.
// A trailing "\r" is removed so CRLF files read the same as LF files.
// Lines may be of any length.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &kerrors.FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, &kerrors.FileError{Op: "read", Path: path, Err: err}
		}
	}
}

// UpsertLines replaces the first line starting with "key=" with
// "key=value". Later lines with the same key are left as they are. When no
// line matches, the entry is appended, preceded by one blank separator line
// if the last existing line is not already blank.
func UpsertLines(lines []string, key, value string) []string {
	prefix := key + "="
	entry := prefix + value

	for i, line := range lines {
		if strings.HasPrefix(line, prefix) {
			lines[i] = entry
			return lines
		}
	}

	if len(lines) > 0 && lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return append(lines, entry)
}

// WriteLines truncates the file at path and writes each line followed by a
// newline.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return &kerrors.FileError{Op: "create", Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return &kerrors.FileError{Op: "write", Path: path, Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &kerrors.FileError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &kerrors.FileError{Op: "close", Path: path, Err: err}
	}
	return nil
}

// Lookup returns the value of the first line starting with "key=", the
// same line Write replaces. Lines that are not assignments are ignored.
// The value is unquoted with dotenv rules; if the line does not parse as
// dotenv, the raw text after "=" is returned.
func Lookup(path, key string) (string, bool, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return "", false, err
	}

	prefix := key + "="
	for _, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		if values, err := godotenv.Unmarshal(line); err == nil {
			if v, ok := values[key]; ok {
				return v, true, nil
			}
		}
		return strings.TrimPrefix(line, prefix), true, nil
	}
	return "", false, nil
}
