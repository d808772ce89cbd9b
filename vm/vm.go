/*
 * Synacor VM - Execution engine.
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
 * Owns the entire machine state (memory, registers, stack, instruction
 * pointer, input queue) as a single aggregate and drives the
 * fetch-decode-execute loop. There is no package-level state; every run
 * of the machine is isolated in its own *Machine value.
 */

// Package vm implements the Synacor Challenge virtual machine: the
// operand resolver and execution engine.
package vm

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/rcornwell/synacorvm/vm/image"
	"github.com/rcornwell/synacorvm/vm/opcode"
	"github.com/rcornwell/synacorvm/vm/vmerrors"
)

// numRegisters is the register file size.
const numRegisters = 8

// State is the run state of the machine.
type State uint8

const (
	// Running is the initial and only state in which step advances the
	// program counter.
	Running State = iota
	// Halted is entered by the halt opcode; Run returns cleanly once in
	// this state.
	Halted
)

// Machine is the owned aggregate of Synacor virtual machine state: flat
// memory, eight registers, an unbounded value/call stack, the
// instruction pointer, run state, and the queued, not-yet-consumed
// characters of the last line read from input.
type Machine struct {
	mem   [image.AddressSpace]uint16
	reg   [numRegisters]uint16
	stack []uint16
	ip    uint16
	state State

	in    *bufio.Reader
	out   *bufio.Writer
	inbuf []byte
}

// New builds a machine whose memory is initialized from words. Words
// beyond image.AddressSpace are ignored; memory past len(words) stays
// zero. Registers, stack, and IP start at their zero values and the
// machine starts Running.
func New(words []uint16) *Machine {
	m := &Machine{state: Running}
	copy(m.mem[:], words)
	return m
}

// State reports the machine's current run state.
func (m *Machine) State() State {
	return m.state
}

// Run drives the fetch-decode-execute loop against the supplied input and
// output streams until the machine halts or a fault occurs. Output is
// flushed on return regardless of outcome.
func (m *Machine) Run(in io.Reader, out io.Writer) error {
	m.in = bufio.NewReader(in)
	m.out = bufio.NewWriter(out)
	defer m.out.Flush()

	for m.state == Running {
		if err := m.step(); err != nil {
			return err
		}
	}
	return nil
}

// step fetches, decodes, and executes exactly one instruction.
func (m *Machine) step() error {
	word, err := m.fetch()
	if err != nil {
		return err
	}
	op, err := opcode.Decode(word)
	if err != nil {
		return err
	}
	slog.Debug("decode", "ip", m.ip-1, "op", op.String(), "operands", op.Arity())
	return m.execute(op)
}

// fetch reads the word at the instruction pointer and advances it by
// one. A well-formed program never fetches at or past the top of the
// address space; an attempt to do so is reported as a bad address rather
// than silently wrapping.
func (m *Machine) fetch() (uint16, error) {
	if int(m.ip) >= image.AddressSpace {
		return 0, &vmerrors.BadAddress{Addr: uint32(m.ip)}
	}
	w := m.mem[m.ip]
	m.ip++
	return w, nil
}

// value resolves a raw operand word by the register/literal rule: words
// below 32768 are literals, words in [32768, 32775] dereference
// registers 0-7, anything else is invalid.
func (m *Machine) value(word uint16) (uint16, error) {
	switch {
	case word < image.AddressSpace:
		return word, nil
	case word <= image.AddressSpace+numRegisters-1:
		return m.reg[word-image.AddressSpace], nil
	default:
		return 0, &vmerrors.InvalidOperand{Word: word}
	}
}

// operand fetches the next word and resolves it as a read-position
// operand.
func (m *Machine) operand() (uint16, error) {
	w, err := m.fetch()
	if err != nil {
		return 0, err
	}
	return m.value(w)
}

// destination fetches the next word and requires it to name a register,
// returning the register index. Destination operands are never resolved
// as values: the raw word itself must be a register reference.
func (m *Machine) destination() (uint8, error) {
	w, err := m.fetch()
	if err != nil {
		return 0, err
	}
	if w < image.AddressSpace || w > image.AddressSpace+numRegisters-1 {
		return 0, &vmerrors.InvalidOperand{Word: w}
	}
	return uint8(w - image.AddressSpace), nil
}

func (m *Machine) pushStack(v uint16) {
	m.stack = append(m.stack, v)
}

func (m *Machine) popStack(op string) (uint16, error) {
	if len(m.stack) == 0 {
		return 0, &vmerrors.EmptyStack{Op: op}
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

func boolWord(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// execute runs the handler for op, having already consumed the opcode
// word itself.
func (m *Machine) execute(op opcode.Op) error {
	switch op {
	case opcode.Halt:
		m.state = Halted
		return nil

	case opcode.Set:
		a, err := m.destination()
		if err != nil {
			return err
		}
		b, err := m.operand()
		if err != nil {
			return err
		}
		m.reg[a] = b
		return nil

	case opcode.Push:
		a, err := m.operand()
		if err != nil {
			return err
		}
		m.pushStack(a)
		return nil

	case opcode.Pop:
		a, err := m.destination()
		if err != nil {
			return err
		}
		v, err := m.popStack("pop")
		if err != nil {
			return err
		}
		m.reg[a] = v
		return nil

	case opcode.Eq:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		m.reg[a] = boolWord(b == c)
		return nil

	case opcode.Gt:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		m.reg[a] = boolWord(b > c)
		return nil

	case opcode.Jmp:
		target, err := m.operand()
		if err != nil {
			return err
		}
		m.ip = target
		return nil

	case opcode.Jt:
		cond, err := m.operand()
		if err != nil {
			return err
		}
		target, err := m.operand()
		if err != nil {
			return err
		}
		if cond != 0 {
			m.ip = target
		}
		return nil

	case opcode.Jf:
		cond, err := m.operand()
		if err != nil {
			return err
		}
		target, err := m.operand()
		if err != nil {
			return err
		}
		if cond == 0 {
			m.ip = target
		}
		return nil

	case opcode.Add:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		m.reg[a] = uint16((uint32(b) + uint32(c)) % image.AddressSpace)
		return nil

	case opcode.Mult:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		m.reg[a] = uint16((uint32(b) * uint32(c)) % image.AddressSpace)
		return nil

	case opcode.Mod:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		if c == 0 {
			return &vmerrors.DivideByZero{}
		}
		m.reg[a] = b % c
		return nil

	case opcode.And:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		m.reg[a] = b & c
		return nil

	case opcode.Or:
		a, b, c, err := m.dest2operands()
		if err != nil {
			return err
		}
		m.reg[a] = b | c
		return nil

	case opcode.Not:
		a, err := m.destination()
		if err != nil {
			return err
		}
		b, err := m.operand()
		if err != nil {
			return err
		}
		m.reg[a] = (^b) & 0x7FFF
		return nil

	case opcode.Rmem:
		a, err := m.destination()
		if err != nil {
			return err
		}
		addr, err := m.operand()
		if err != nil {
			return err
		}
		if int(addr) >= image.AddressSpace {
			return &vmerrors.BadAddress{Addr: uint32(addr)}
		}
		m.reg[a] = m.mem[addr]
		return nil

	case opcode.Wmem:
		addr, err := m.operand()
		if err != nil {
			return err
		}
		val, err := m.operand()
		if err != nil {
			return err
		}
		if int(addr) >= image.AddressSpace {
			return &vmerrors.BadAddress{Addr: uint32(addr)}
		}
		m.mem[addr] = val
		return nil

	case opcode.Call:
		target, err := m.operand()
		if err != nil {
			return err
		}
		m.pushStack(m.ip)
		m.ip = target
		return nil

	case opcode.Ret:
		target, err := m.popStack("ret")
		if err != nil {
			return err
		}
		m.ip = target
		return nil

	case opcode.Out:
		a, err := m.operand()
		if err != nil {
			return err
		}
		return m.output(a)

	case opcode.In:
		a, err := m.destination()
		if err != nil {
			return err
		}
		c, err := m.input()
		if err != nil {
			return err
		}
		m.reg[a] = c
		return nil

	case opcode.Noop:
		return nil
	}

	return &vmerrors.UnknownOperation{Opcode: uint16(op)}
}

// dest2operands fetches a 3-operand instruction's destination register
// and two resolved read operands, the common shape of eq, gt, add, mult,
// mod, and, or.
func (m *Machine) dest2operands() (dest uint8, b, c uint16, err error) {
	dest, err = m.destination()
	if err != nil {
		return 0, 0, 0, err
	}
	b, err = m.operand()
	if err != nil {
		return 0, 0, 0, err
	}
	c, err = m.operand()
	if err != nil {
		return 0, 0, 0, err
	}
	return dest, b, c, nil
}
