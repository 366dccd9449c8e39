// Derived from Go which is licensed as follows:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//   * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//   * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//   * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package bmp

import (
	"github.com/TraceMyers/Blight/internal/errs"
	"github.com/TraceMyers/Blight/internal/pixel"
	"github.com/TraceMyers/Blight/internal/transfer"
)

// decodeRLE runs the RLE4/RLE8 byte-pair state machine (spec §4.2 "RLE8 /
// RLE4 decoding") over data (the pixel region only, starting right after
// BITMAPFILEHEADER.dataOffset) and writes resolved palette colors into
// dst under outTag.
func decodeRLE(data []byte, depth uint16, width, height int, topDown bool, palette *pixel.Container, outTag pixel.Tag, dst *pixel.Container) error {
	x := 0
	y := height - 1
	yStep := -1
	if topDown {
		y, yStep = 0, 1
	}
	outSize := outTag.Size()
	isValid := func() bool { return x >= 0 && x < width && y >= 0 && y < height }
	writeAt := func(index int) error {
		if !isValid() {
			return errs.New(errs.BmpRLECoordinatesOutOfBounds, "bmp: rle write")
		}
		row := dst.Row(y, width)
		return transfer.WritePaletteIndex(outTag, palette, index, row[x*outSize:(x+1)*outSize])
	}

	i := 0
	readByte := func() (byte, error) {
		if i >= len(data) {
			return 0, errs.New(errs.BmpInvalidRLEData, "bmp: rle")
		}
		b := data[i]
		i++
		return b, nil
	}
	readPair := func() (byte, byte, error) {
		b1, err := readByte()
		if err != nil {
			return 0, 0, err
		}
		b2, err := readByte()
		if err != nil {
			return 0, 0, err
		}
		return b1, b2, nil
	}

	for {
		b1, b2, err := readPair()
		if err != nil {
			return err
		}
		if b1 != 0 {
			// Encoded mode: b1 repeats of the color(s) packed in b2.
			for n := 0; n < int(b1); n++ {
				var idx byte
				if depth == 8 {
					idx = b2
				} else if n%2 == 0 {
					idx = (b2 >> 4) & 0xF
				} else {
					idx = b2 & 0xF
				}
				if err := writeAt(int(idx)); err != nil {
					return err
				}
				x++
			}
			continue
		}
		switch b2 {
		case 0: // EOL
			x = 0
			y += yStep
		case 1: // EOF
			return nil
		case 2: // delta move
			dx, dy, err := readPair()
			if err != nil {
				return err
			}
			x += int(dx)
			y -= int(dy)
			if !isValid() {
				return errs.New(errs.BmpRLECoordinatesOutOfBounds, "bmp: rle delta")
			}
		default:
			// Absolute mode: b2 literal indices follow, padded to a
			// 2-byte boundary.
			count := int(b2)
			nBytes := (count*int(depth) + 7) / 8
			if nBytes%2 != 0 {
				nBytes++
			}
			lit := make([]byte, nBytes)
			for j := range lit {
				bb, err := readByte()
				if err != nil {
					return err
				}
				lit[j] = bb
			}
			for n := 0; n < count; n++ {
				var idx byte
				if depth == 8 {
					idx = lit[n]
				} else if n%2 == 0 {
					idx = (lit[n/2] >> 4) & 0xF
				} else {
					idx = lit[n/2] & 0xF
				}
				if err := writeAt(int(idx)); err != nil {
					return err
				}
				x++
			}
		}
	}
}
