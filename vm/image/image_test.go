/*
 * Synacor VM image loader test cases.
 *
 * Copyright 2024, Richard Cornwell
 */

package image

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func wordsToBytes(words []uint16) []byte {
	buf := make([]byte, 0, len(words)*2)
	for _, w := range words {
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], w)
		buf = append(buf, b[:]...)
	}
	return buf
}

func TestLoadFillsMemoryInOrder(t *testing.T) {
	words := []uint16{19, 65, 19, 10, 0}
	mem, err := Load(bytes.NewReader(wordsToBytes(words)))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(mem) != AddressSpace {
		t.Fatalf("got memory size %d, want %d", len(mem), AddressSpace)
	}
	for i, w := range words {
		if mem[i] != w {
			t.Errorf("mem[%d] = %d, want %d", i, mem[i], w)
		}
	}
	for i := len(words); i < AddressSpace; i++ {
		if mem[i] != 0 {
			t.Errorf("mem[%d] = %d, want 0", i, mem[i])
		}
	}
}

func TestLoadStopsCleanlyOnShortTrailingByte(t *testing.T) {
	buf := wordsToBytes([]uint16{1, 2, 3})
	buf = append(buf, 0xAB) // dangling half word
	mem, err := Load(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := []uint16{1, 2, 3}
	for i, w := range want {
		if mem[i] != w {
			t.Errorf("mem[%d] = %d, want %d", i, mem[i], w)
		}
	}
	if mem[3] != 0 {
		t.Errorf("mem[3] = %d, want 0 (dangling byte dropped)", mem[3])
	}
}

func TestLoadTruncatesOversizedImage(t *testing.T) {
	words := make([]uint16, AddressSpace+1)
	for i := range words {
		words[i] = uint16(i % 32768)
	}
	mem, err := Load(bytes.NewReader(wordsToBytes(words)))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(mem) != AddressSpace {
		t.Fatalf("got memory size %d, want %d", len(mem), AddressSpace)
	}
	if mem[0] != 0 {
		t.Errorf("mem[0] = %d, want 0", mem[0])
	}
}

func TestLoadEmptyStream(t *testing.T) {
	mem, err := Load(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for i, w := range mem {
		if w != 0 {
			t.Fatalf("mem[%d] = %d, want 0 on empty image", i, w)
		}
	}
}
