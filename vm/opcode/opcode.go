/*
 * Synacor VM - Opcode table.
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
 * Pure mapping from an opcode word to one of the 22 defined operations.
 */

// Package opcode defines the Synacor Challenge instruction set and the
// pure decode step from a fetched word to an operation.
package opcode

import "github.com/rcornwell/synacorvm/vm/vmerrors"

// Op identifies one of the 22 Synacor Challenge operations.
type Op uint8

// The full instruction set, in fixed numeric order.
const (
	Halt Op = iota // 0: stop execution
	Set             // 1: set a b
	Push            // 2: push a
	Pop             // 3: pop a
	Eq              // 4: eq a b c
	Gt              // 5: gt a b c
	Jmp             // 6: jmp a
	Jt              // 7: jt a b
	Jf              // 8: jf a b
	Add             // 9: add a b c
	Mult            // 10: mult a b c
	Mod             // 11: mod a b c
	And             // 12: and a b c
	Or              // 13: or a b c
	Not             // 14: not a b
	Rmem            // 15: rmem a b
	Wmem            // 16: wmem a b
	Call            // 17: call a
	Ret             // 18: ret
	Out             // 19: out a
	In              // 20: in a
	Noop            // 21: noop
)

// numOps is the count of legal opcodes, one past the highest defined Op.
const numOps = int(Noop) + 1

// Arity gives the number of operand words each operation consumes,
// indexed by Op.
var arity = [numOps]int{
	Halt: 0,
	Set:  2,
	Push: 1,
	Pop:  1,
	Eq:   3,
	Gt:   3,
	Jmp:  1,
	Jt:   2,
	Jf:   2,
	Add:  3,
	Mult: 3,
	Mod:  3,
	And:  3,
	Or:   3,
	Not:  2,
	Rmem: 2,
	Wmem: 2,
	Call: 1,
	Ret:  0,
	Out:  1,
	In:   1,
	Noop: 0,
}

var names = [numOps]string{
	Halt: "halt",
	Set:  "set",
	Push: "push",
	Pop:  "pop",
	Eq:   "eq",
	Gt:   "gt",
	Jmp:  "jmp",
	Jt:   "jt",
	Jf:   "jf",
	Add:  "add",
	Mult: "mult",
	Mod:  "mod",
	And:  "and",
	Or:   "or",
	Not:  "not",
	Rmem: "rmem",
	Wmem: "wmem",
	Call: "call",
	Ret:  "ret",
	Out:  "out",
	In:   "in",
	Noop: "noop",
}

// Decode classifies a fetched opcode word, or reports UnknownOperation
// for anything outside [0, 21].
func Decode(word uint16) (Op, error) {
	if int(word) >= numOps {
		return 0, &vmerrors.UnknownOperation{Opcode: word}
	}
	return Op(word), nil
}

// Arity returns the number of operand words op consumes.
func (op Op) Arity() int {
	return arity[op]
}

// String names op for diagnostics.
func (op Op) String() string {
	return names[op]
}
