/*
 * Synacor VM - Character I/O.
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
 */

package vm

import (
	"io"
	"unicode/utf8"

	"github.com/rcornwell/synacorvm/vm/vmerrors"
)

// output interprets val as a Unicode scalar value and emits its UTF-8
// encoding. Output is flushed on every newline so an interactive prompt
// is visible before the machine can block on input, and unconditionally
// when Run returns.
func (m *Machine) output(val uint16) error {
	r := rune(val)
	if !utf8.ValidRune(r) {
		return &vmerrors.BadCharacter{Value: val}
	}
	if _, err := m.out.WriteRune(r); err != nil {
		return &vmerrors.IoFault{Err: err}
	}
	if r == '\n' {
		if err := m.out.Flush(); err != nil {
			return &vmerrors.IoFault{Err: err}
		}
	}
	return nil
}

// input consumes the next character from the queued input buffer,
// refilling it by blocking on a full line from the underlying reader
// when empty. Characters are delivered exactly as read, including the
// terminating newline; there is no echo or translation.
func (m *Machine) input() (uint16, error) {
	if len(m.inbuf) == 0 {
		if err := m.out.Flush(); err != nil {
			return 0, &vmerrors.IoFault{Err: err}
		}
		line, err := m.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return 0, &vmerrors.IoFault{Err: io.ErrUnexpectedEOF}
			}
			return 0, &vmerrors.IoFault{Err: err}
		}
		m.inbuf = append(m.inbuf, []byte(line)...)
	}

	c := m.inbuf[0]
	m.inbuf = m.inbuf[1:]
	return uint16(c), nil
}
