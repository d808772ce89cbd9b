/*
 * Synacor VM opcode test cases.
 *
 * Copyright 2024, Richard Cornwell
 */

package opcode

import "testing"

func TestDecodeKnownOpcodes(t *testing.T) {
	want := map[uint16]Op{
		0: Halt, 1: Set, 2: Push, 3: Pop, 4: Eq, 5: Gt, 6: Jmp, 7: Jt, 8: Jf,
		9: Add, 10: Mult, 11: Mod, 12: And, 13: Or, 14: Not, 15: Rmem,
		16: Wmem, 17: Call, 18: Ret, 19: Out, 20: In, 21: Noop,
	}
	for word, op := range want {
		got, err := Decode(word)
		if err != nil {
			t.Fatalf("Decode(%d) returned error: %v", word, err)
		}
		if got != op {
			t.Errorf("Decode(%d) = %v, want %v", word, got, op)
		}
	}
}

func TestDecodeRejectsOutOfRange(t *testing.T) {
	for _, word := range []uint16{22, 100, 0xFFFF} {
		if _, err := Decode(word); err == nil {
			t.Errorf("Decode(%d) succeeded, want UnknownOperation error", word)
		}
	}
}

func TestArityMatchesSpecTable(t *testing.T) {
	want := map[Op]int{
		Halt: 0, Set: 2, Push: 1, Pop: 1, Eq: 3, Gt: 3, Jmp: 1, Jt: 2, Jf: 2,
		Add: 3, Mult: 3, Mod: 3, And: 3, Or: 3, Not: 2, Rmem: 2, Wmem: 2,
		Call: 1, Ret: 0, Out: 1, In: 1, Noop: 0,
	}
	for op, n := range want {
		if got := op.Arity(); got != n {
			t.Errorf("%v.Arity() = %d, want %d", op, got, n)
		}
	}
}
