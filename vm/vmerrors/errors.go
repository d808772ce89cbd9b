/*
 * Synacor VM - Fault taxonomy.
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

// Package vmerrors defines the fault taxonomy raised by the Synacor
// virtual machine. Every fault aborts the run loop; none are recoverable
// inside the engine.
package vmerrors

import (
	"fmt"

	"github.com/rcornwell/synacorvm/util/hex"
)

// UnknownOperation is raised when the Decoder receives an opcode word
// outside [0, 21].
type UnknownOperation struct {
	Opcode uint16
}

func (e *UnknownOperation) Error() string {
	return fmt.Sprintf("unknown operation: %s", hex.FormatWord(e.Opcode))
}

// EmptyStack is raised by pop or ret when the value stack has nothing
// left to remove.
type EmptyStack struct {
	Op string // "pop" or "ret"
}

func (e *EmptyStack) Error() string {
	return fmt.Sprintf("%s: stack is empty", e.Op)
}

// InvalidOperand is raised when a raw operand word is >= 32776, or when a
// destination position does not hold a register reference.
type InvalidOperand struct {
	Word uint16
}

func (e *InvalidOperand) Error() string {
	return fmt.Sprintf("invalid operand: %s", hex.FormatWord(e.Word))
}

// BadAddress is raised when rmem or wmem targets an address outside
// [0, 32767], or when an instruction fetch reaches address 32768.
type BadAddress struct {
	Addr uint32
}

func (e *BadAddress) Error() string {
	return fmt.Sprintf("address out of range: %s", hex.FormatWord(uint16(e.Addr)))
}

// DivideByZero is raised by mod when the divisor resolves to zero.
type DivideByZero struct{}

func (e *DivideByZero) Error() string {
	return "division by zero"
}

// BadCharacter is raised when out is asked to emit a value that is not a
// valid Unicode scalar.
type BadCharacter struct {
	Value uint16
}

func (e *BadCharacter) Error() string {
	return fmt.Sprintf("invalid character code: %s", hex.FormatWord(e.Value))
}

// IoFault wraps a host I/O error encountered reading stdin or writing
// stdout, including an unexpected EOF mid-line during in.
type IoFault struct {
	Err error
}

func (e *IoFault) Error() string {
	return fmt.Sprintf("i/o fault: %v", e.Err)
}

func (e *IoFault) Unwrap() error {
	return e.Err
}

// LoadFault wraps a failure opening or reading the image file.
type LoadFault struct {
	Err error
}

func (e *LoadFault) Error() string {
	return fmt.Sprintf("load fault: %v", e.Err)
}

func (e *LoadFault) Unwrap() error {
	return e.Err
}
