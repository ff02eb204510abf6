// Package day09 solves "Disk Fragmenter".
package day09

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/maisem/aoc2024"
)

// Block is one disk block: free, or holding part of a file. The zero value
// is a free block.
type Block struct {
	id   int
	used bool
}

// File returns a block belonging to file id.
func File(id int) Block {
	return Block{id: id, used: true}
}

func (b Block) Free() bool {
	return !b.used
}

// FileID returns the id of the file stored in b, if any.
func (b Block) FileID() (int, bool) {
	return b.id, b.used
}

// Disk is the block map of a disk.
type Disk []Block

// Parse expands the dense format: alternating file and free-space lengths,
// one digit each. Files are numbered from 0 in order.
func Parse(in []byte) Disk {
	var d Disk
	for i, n := range aoc.Digits(string(bytes.TrimSpace(in))) {
		b := Block{}
		if i%2 == 0 {
			b = File(i / 2)
		}
		for j := 0; j < n; j++ {
			d = append(d, b)
		}
	}
	return d
}

func (d Disk) Clone() Disk {
	return append(Disk(nil), d...)
}

// String renders d the way the puzzle does: the file id for used blocks
// (ids above 9 only show their last digit) and a dot for free ones.
func (d Disk) String() string {
	var sb strings.Builder
	for _, b := range d {
		if id, ok := b.FileID(); ok {
			sb.WriteString(strconv.Itoa(id % 10))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Checksum is the sum of position times file id over used blocks.
func (d Disk) Checksum() int {
	sum := 0
	for i, b := range d {
		if id, ok := b.FileID(); ok {
			sum += i * id
		}
	}
	return sum
}

// CompactBlocks returns a copy of d where blocks have been moved one at a
// time from the end of the disk to the leftmost free block, until no free
// block precedes a used one.
func (d Disk) CompactBlocks() Disk {
	d = d.Clone()
	free, last := 0, len(d)-1
	for {
		for free < len(d) && !d[free].Free() {
			free++
		}
		for last >= 0 && d[last].Free() {
			last--
		}
		if free >= last {
			return d
		}
		d[free], d[last] = d[last], d[free]
	}
}

type span struct {
	start, len int
}

// files returns the span of every file, indexed by id.
func (d Disk) files() []span {
	var out []span
	for i, b := range d {
		id, ok := b.FileID()
		if !ok {
			continue
		}
		for len(out) <= id {
			out = append(out, span{start: -1})
		}
		if out[id].start == -1 {
			out[id].start = i
		}
		out[id].len++
	}
	return out
}

// CompactFiles returns a copy of d where, from the highest file id down,
// each file has been moved whole to the leftmost free run that can hold it
// and starts left of the file. Files with no such run stay put. Each file is
// considered once.
func (d Disk) CompactFiles() Disk {
	d = d.Clone()
	files := d.files()

	// from[n] is where to start looking for a free run of length n. Free
	// space left of a file only ever shrinks as files move in, and later
	// files start further left, so these never need to move back.
	var from [10]int

	for id := len(files) - 1; id >= 0; id-- {
		f := files[id]
		if f.start <= 0 || f.len == 0 {
			continue
		}
		hint := 0
		if f.len < len(from) {
			hint = from[f.len]
		}
		at, ok := d.findFree(hint, f.start, f.len)
		if f.len < len(from) {
			from[f.len] = at
		}
		if !ok {
			continue
		}
		for i := 0; i < f.len; i++ {
			d[at+i] = d[f.start+i]
			d[f.start+i] = Block{}
		}
	}
	return d
}

// findFree returns the start of the first run of at least n free blocks
// that begins in [from, before). If there is none it reports false and
// returns where the search gave up.
func (d Disk) findFree(from, before, n int) (int, bool) {
	i := from
	for i < before {
		if !d[i].Free() {
			i++
			continue
		}
		run := 0
		for i+run < len(d) && d[i+run].Free() && run < n {
			run++
		}
		if run == n {
			return i, true
		}
		i += run
	}
	return i, false
}

func Part1(d Disk) int {
	return d.CompactBlocks().Checksum()
}

func Part2(d Disk) int {
	return d.CompactFiles().Checksum()
}
