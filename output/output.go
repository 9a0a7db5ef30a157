// Copyright © by Jeff Foley 2017-2024. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/owasp-amass/zonetransfer/zone"
)

// ErrUnknownFormat is returned when the requested output format is not supported.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the names accepted by NewRenderer.
var Formats = []string{"csv", "stdout", "graph", "dot"}

// Renderer presents the records extracted from a transferred zone.
type Renderer interface {
	Render(records []zone.Record, domain string) error
}

// NewRenderer returns the Renderer selected by name. Files are written into dir,
// and the table and the file notices are written to out.
func NewRenderer(name, dir string, out io.Writer) (Renderer, error) {
	switch strings.ToLower(name) {
	case "stdout":
		return &StdoutRenderer{Out: out}, nil
	case "csv":
		return &FileRenderer{Dir: dir, Ext: "csv", Out: out, Write: WriteCSV}, nil
	case "graph":
		return &FileRenderer{Dir: dir, Ext: "html", Out: out, Write: WriteGraph}, nil
	case "dot":
		return &FileRenderer{Dir: dir, Ext: "dot", Out: out, Write: WriteDOT}, nil
	}
	return nil, fmt.Errorf("%w: %s, must be one of %s", ErrUnknownFormat, name, strings.Join(Formats, ", "))
}

// FileRenderer writes the records into <Dir>/<domain>.<Ext>.
type FileRenderer struct {
	Dir   string
	Ext   string
	Out   io.Writer
	Write func(w io.Writer, records []zone.Record, domain string) error
}

// Render implements the Renderer interface.
func (r *FileRenderer) Render(records []zone.Record, domain string) error {
	path := r.Path(domain)

	if err := writeFile(path, func(w io.Writer) error {
		return r.Write(w, records, domain)
	}); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(r.Out, "File %s written\n", path)
	return nil
}

// Path returns the location of the file generated for the domain.
func (r *FileRenderer) Path(domain string) string {
	return filepath.Join(r.Dir, domain+"."+r.Ext)
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	if err := write(f); err != nil {
		return err
	}
	return f.Sync()
}
