/*
 * Synacor VM - Image loader.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 * Converts a flat little-endian byte stream into initial memory contents.
 * It is a trivial adapter with no opinion on instruction semantics, only
 * on how bytes on disk become words in memory.
 */

// Package image decodes a Synacor Challenge program image into memory
// words.
package image

import (
	"encoding/binary"
	"io"
)

// AddressSpace is the number of words of memory a program image can
// address.
const AddressSpace = 32768

// Load reads pairs of little-endian bytes from r and returns the
// resulting words, one element per memory address starting at 0. If r
// ends mid-word, the partial byte is dropped and the read stops cleanly.
// Words beyond AddressSpace are truncated silently, matching the
// specification's tolerance for ill-formed oversized images.
func Load(r io.Reader) ([]uint16, error) {
	mem := make([]uint16, AddressSpace)

	for addr := 0; addr < AddressSpace; addr++ {
		var w uint16
		if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, err
		}
		mem[addr] = w
	}

	return mem, nil
}
