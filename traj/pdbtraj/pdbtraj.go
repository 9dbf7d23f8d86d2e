/*
 * pdbtraj.go, part of solvtrack.
 *
 * Copyright 2020 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package pdbtraj reads multi-model PDB trajectories (such as those written by
//Gromacs' trjconv) one frame at a time. Each frame goes from a line starting with
//REMARK to the next line starting with ENDMDL. Only the current frame is kept in memory.
package pdbtraj

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	chem "github.com/rmera/solvtrack"
)

const defaultChunk int = 200000

// Options for the reader.
type Options struct {
	chunk int
}

// DefaultOptions returns an Options with the default values.
func DefaultOptions() *Options {
	return &Options{chunk: defaultChunk}
}

// ChunkSize returns the size, in bytes, of the blocks read from the file,
// and sets it, if a valid value is given.
func (O *Options) ChunkSize(size ...int) int {
	ret := O.chunk
	if len(size) > 0 && size[0] > 0 {
		O.chunk = size[0]
	}
	return ret
}

// PDBTrajR is a multi-model PDB trajectory opened for reading. It implements chem.Frames
type PDBTrajR struct {
	f        io.Closer //the underlying file, if any
	dec      io.Closer //the decompressor, if any
	h        *bufio.Reader
	filename string
	readable bool
	frames   int
	lines    int
}

//The zstd Decoder doesn't implement io.ReadCloser
type zstdql struct {
	*zstd.Decoder
}

// Close closes the decoder. It can not be used after this call
func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

// New opens the PDB trajectory name for reading. Files ending in .gz are read
// through gzip, and files ending in .zst or .zstd through zstd.
func New(name string, options ...*Options) (*PDBTrajR, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &Error{message: UnableToOpen + ": " + err.Error(), filename: name, deco: []string{"New"}, critical: true}
	}
	var in io.Reader = f
	var dec io.ReadCloser
	lname := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lname, ".gz"):
		dec, err = gzip.NewReader(bufio.NewReader(f))
	case strings.HasSuffix(lname, ".zst"), strings.HasSuffix(lname, ".zstd"):
		var z *zstd.Decoder
		z, err = zstd.NewReader(bufio.NewReader(f))
		if err == nil {
			dec = zstdql{z}
		}
	}
	if err != nil {
		f.Close()
		return nil, &Error{message: "can't start decompression: " + err.Error(), filename: name, deco: []string{"New"}, critical: true}
	}
	if dec != nil {
		in = dec
	}
	P := NewReader(in, name, options...)
	P.f = f
	if dec != nil {
		P.dec = dec
	}
	return P, nil
}

// NewReader returns a PDBTrajR that reads the trajectory from r. The name is
// only used in error messages.
func NewReader(r io.Reader, name string, options ...*Options) *PDBTrajR {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	P := new(PDBTrajR)
	P.filename = name
	P.h = bufio.NewReaderSize(r, o.ChunkSize())
	P.readable = true
	return P
}

// Readable returns true if the handle is readable (if it is possible to call Next on it)
func (P *PDBTrajR) Readable() bool {
	return P.readable
}

// Frames returns the number of frames read so far.
func (P *PDBTrajR) Frames() int {
	return P.frames
}

// Next returns the text of the next frame, without leading and trailing whitespace.
// At the end of the trajectory, it closes the handle and returns a chem.LastFrameError.
// A frame that contains more than one MODEL line, an ENDMDL line outside a frame,
// or a frame that is not terminated before the end of the file, produce a
// chem.MalformedFrameBoundary error.
func (P *PDBTrajR) Next() (string, error) {
	if !P.readable {
		return "", &Error{message: TrajUnIniRead, filename: P.filename, deco: []string{"Next"}, critical: true}
	}
	var frame strings.Builder
	inframe := false
	models := 0
	for {
		line, err := P.h.ReadString('\n')
		if len(line) > 0 {
			P.lines++
			if !inframe {
				if strings.HasPrefix(line, "ENDMDL") {
					return "", P.boundaryError("ENDMDL outside of a frame")
				}
				//anything before the first REMARK of a frame is skipped
				if strings.HasPrefix(line, "REMARK") {
					inframe = true
				}
			}
			if inframe {
				frame.WriteString(line)
				if strings.HasPrefix(line, "MODEL") {
					models++
					if models > 1 {
						return "", P.boundaryError("more than one MODEL in a frame, an ENDMDL line might be missing")
					}
				}
				if strings.HasPrefix(line, "ENDMDL") {
					P.frames++
					return strings.TrimSpace(frame.String()), nil
				}
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", &Error{message: ReadError + ": " + err.Error(), filename: P.filename, deco: []string{"Next"}, critical: true}
			}
			if inframe {
				return "", P.boundaryError("end of file inside a frame")
			}
			//nothing bad happened here, the trajectory just ended.
			P.Close()
			return "", newlastFrameError(P.filename, "Next")
		}
	}
}

func (P *PDBTrajR) boundaryError(message string) *Error {
	return &Error{
		message:  fmt.Sprintf("%s (frame %d, line %d)", message, P.frames, P.lines),
		filename: P.filename,
		kind:     chem.MalformedFrameBoundary,
		deco:     []string{"Next"},
		critical: true,
	}
}

// Close closes the object, and marks it as unreadable
func (P *PDBTrajR) Close() {
	if !P.readable {
		return
	}
	if P.dec != nil {
		P.dec.Close()
	}
	if P.f != nil {
		P.f.Close()
	}
	P.readable = false
}

//Errors

// Error is the general structure for PDB trajectory errors. It fullfills chem.Error and chem.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	kind     string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	deco := ""
	if len(err.deco) > 0 {
		deco = strings.Join(err.deco, ": ") + ": "
	}
	if err.kind != "" {
		return fmt.Sprintf("%spdb trajectory %s error: %s: %s", deco, err.filename, err.kind, err.message)
	}
	return fmt.Sprintf("%spdb trajectory %s error: %s", deco, err.filename, err.message)
}

// Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append([]string{deco}, err.deco...)
	}
	return err.deco
}

// FileName returns the file to which the failing trajectory was associated
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file (always "pdb") associated to the error
func (err *Error) Format() string { return "pdb" }

// Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

// ErrorKind returns the kind of problem found (e.g. chem.MalformedFrameBoundary)
// or an empty string.
func (err *Error) ErrorKind() string { return err.kind }

const (
	TrajUnIniRead = "Traj object uninitialized to read"
	ReadError     = "Error reading frame"
	UnableToOpen  = "Unable to open file"
)

// lastFrameError implements chem.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

// NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return "EOF" }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return "pdb" }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
