package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/ferrybooking/internal/domain"
)

// TextFile is a plain-text file that is only ever rewritten whole.
type TextFile struct {
	path string
}

func NewTextFile(path string) *TextFile {
	return &TextFile{path: path}
}

func (f *TextFile) Path() string {
	return f.path
}

// Overwrite truncates the file and writes what render produces.
func (f *TextFile) Overwrite(render func(w io.Writer)) (err error) {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrIO, f.path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", domain.ErrIO, f.path, cerr)
		}
	}()

	buf := bufio.NewWriter(file)
	render(buf)
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrIO, f.path, err)
	}
	return nil
}

func (f *TextFile) Clear() error {
	return f.Overwrite(func(io.Writer) {})
}

// Dump copies the file to w line by line and reports whether it was empty.
func (f *TextFile) Dump(w io.Writer) (empty bool, err error) {
	file, err := os.Open(f.path)
	if err != nil {
		return false, fmt.Errorf("%w: open %s: %v", domain.ErrIO, f.path, err)
	}
	defer file.Close()

	empty = true
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		empty = false
		fmt.Fprintln(w, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return empty, fmt.Errorf("%w: read %s: %v", domain.ErrIO, f.path, err)
	}
	return empty, nil
}
