//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"errors"
	"testing"
)

var (
	abcBlock = Block{
		0x61626380, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0x00000018,
	}
	abcDigest = State{
		0xa9993e36, 0x4706816a, 0xba3e2571, 0x7850c26c, 0x9cd0d89d,
	}

	twoBlock1 = Block{
		0x61626364, 0x62636465, 0x63646566, 0x64656667,
		0x65666768, 0x66676869, 0x6768696a, 0x68696a6b,
		0x696a6b6c, 0x6a6b6c6d, 0x6b6c6d6e, 0x6c6d6e6f,
		0x6d6e6f70, 0x6e6f7071, 0x80000000, 0x00000000,
	}
	twoBlock2 = Block{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0x000001c0,
	}

	repeatBlock = Block{
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
	}
)

func TestSingleBlock(t *testing.T) {
	e := New()
	e.Reset()
	e.Process(&abcBlock)
	if got := e.Digest(); got != abcDigest {
		t.Errorf("digest mismatch: got %v, expected %v", got, abcDigest)
	}
	if e.Blocks() != 1 {
		t.Errorf("block count: got %d, expected 1", e.Blocks())
	}
}

func TestDualBlock(t *testing.T) {
	expected1 := State{
		0xf4286818, 0xc37b27ae, 0x0408f581, 0x84677148, 0x4a566572,
	}
	expected2 := State{
		0x84983e44, 0x1c3bd26e, 0xbaae4aa1, 0xf95129e5, 0xe54670f1,
	}

	e := New()
	e.Reset()
	e.Process(&twoBlock1)
	if got := e.Digest(); got != expected1 {
		t.Errorf("block 1: got %v, expected %v", got, expected1)
	}
	e.Process(&twoBlock2)
	if got := e.Digest(); got != expected2 {
		t.Errorf("block 2: got %v, expected %v", got, expected2)
	}
}

func TestRepeatedBlock(t *testing.T) {
	expected := State{
		0xea2ebc79, 0x35516705, 0xde1e1467, 0x31e55587, 0xa0038725,
	}
	n := 10000
	if testing.Short() {
		t.Skipf("skipping %d block test in short mode", n)
	}

	e := New()
	e.Reset()
	for i := 0; i < n; i++ {
		e.Process(&repeatBlock)
	}
	if got := e.Digest(); got != expected {
		t.Errorf("digest mismatch: got %v, expected %v", got, expected)
	}
}

func TestInitialState(t *testing.T) {
	e := New()
	if got := e.Digest(); got != (State{}) {
		t.Errorf("uninitialized digest: got %v, expected zero state", got)
	}
	e.Reset()
	expected := State{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
	}
	if got := e.Digest(); got != expected {
		t.Errorf("reset digest: got %v, expected %v", got, expected)
	}
}

func TestReuse(t *testing.T) {
	e := New()
	e.Reset()
	e.Process(&repeatBlock)
	e.Process(&twoBlock2)

	e.Reset()
	if e.Digest() != IV || e.Blocks() != 0 {
		t.Fatalf("reset did not restore IV: %v, blocks=%d",
			e.Digest(), e.Blocks())
	}
	e.Process(&abcBlock)
	if got := e.Digest(); got != abcDigest {
		t.Errorf("digest after reuse: got %v, expected %v", got, abcDigest)
	}
}

func TestRotateLeft(t *testing.T) {
	tests := []struct {
		x        uint32
		r        int
		expected uint32
	}{
		{0x80000000, 1, 0x00000001},
		{0x00000001, 31, 0x80000000},
		{0x12345678, 4, 0x23456781},
		{0xffffffff, 5, 0xffffffff},
		{0x80000001, 30, 0x60000000},
	}
	for _, test := range tests {
		got := RotateLeft(test.x, test.r)
		if got != test.expected {
			t.Errorf("RotateLeft(0x%08x, %d)=0x%08x, expected 0x%08x",
				test.x, test.r, got, test.expected)
		}
	}
}

func TestExpand(t *testing.T) {
	w := Expand(&abcBlock)
	if len(w) != ScheduleWords {
		t.Fatalf("schedule length %d", len(w))
	}
	for i := 0; i < BlockWords; i++ {
		if w[i] != abcBlock[i] {
			t.Errorf("W[%d]=%08x, expected %08x", i, w[i], abcBlock[i])
		}
	}
	if w[16] != 0xc2c4c700 {
		t.Errorf("W[16]=%08x, expected c2c4c700", w[16])
	}
	if w2 := Expand(&abcBlock); w2 != w {
		t.Errorf("Expand is not deterministic")
	}

	var zero Block
	if Expand(&zero) != (Schedule{}) {
		t.Errorf("zero block expands to non-zero schedule")
	}
}

func TestRoundTable(t *testing.T) {
	tests := []struct {
		t    int
		name string
		k    uint32
	}{
		{0, "Ch", 0x5a827999},
		{19, "Ch", 0x5a827999},
		{20, "Parity", 0x6ed9eba1},
		{39, "Parity", 0x6ed9eba1},
		{40, "Maj", 0x8f1bbcdc},
		{59, "Maj", 0x8f1bbcdc},
		{60, "Parity", 0xca62c1d6},
		{79, "Parity", 0xca62c1d6},
	}
	for _, test := range tests {
		name, _ := RoundFunction(test.t)
		if name != test.name {
			t.Errorf("round %d: function %s, expected %s",
				test.t, name, test.name)
		}
		if k := RoundConstant(test.t); k != test.k {
			t.Errorf("round %d: k=%08x, expected %08x", test.t, k, test.k)
		}
	}
	if Ch(0xffff0000, 0x12345678, 0x9abcdef0) != 0x1234def0 {
		t.Errorf("Ch mismatch")
	}
	if Maj(0xff00ff00, 0xf0f0f0f0, 0x0000ffff) != 0xf000fff0 {
		t.Errorf("Maj mismatch")
	}
}

func TestChaining(t *testing.T) {
	e := New()
	e.Reset()
	e.Process(&twoBlock1)
	e.Process(&twoBlock2)

	w1 := Expand(&twoBlock1)
	w2 := Expand(&twoBlock2)
	h := Compress(Compress(IV, &w1), &w2)

	if e.Digest() != h {
		t.Errorf("chained engine %v != compress(compress(IV)) %v",
			e.Digest(), h)
	}
	if Compress(IV, &w1) != Compress(IV, &w1) {
		t.Errorf("Compress is not deterministic")
	}
}

func TestProcessWords(t *testing.T) {
	e := New()
	e.Reset()

	words := make([]uint64, 16)
	for i, w := range abcBlock {
		words[i] = uint64(w)
	}

	err := e.ProcessWords(words[:15])
	if !errors.Is(err, ErrBlockSize) {
		t.Errorf("15 words: got %v, expected ErrBlockSize", err)
	}
	err = e.ProcessWords(append(words, 0))
	if !errors.Is(err, ErrBlockSize) {
		t.Errorf("17 words: got %v, expected ErrBlockSize", err)
	}
	bad := append([]uint64(nil), words...)
	bad[3] = 0x100000000
	err = e.ProcessWords(bad)
	if !errors.Is(err, ErrWordRange) {
		t.Errorf("wide word: got %v, expected ErrWordRange", err)
	}
	if e.Digest() != IV || e.Blocks() != 0 {
		t.Fatalf("rejected blocks modified state: %v", e.Digest())
	}

	if err := e.ProcessWords(words); err != nil {
		t.Fatalf("ProcessWords failed: %v", err)
	}
	if e.Digest() != abcDigest {
		t.Errorf("digest mismatch: got %v, expected %v", e.Digest(), abcDigest)
	}
}

type countingTracer struct {
	schedules int
	rounds    int
	digests   []State
	first     Round
	last      Round
}

func (c *countingTracer) Schedule(block uint64, w *Schedule) {
	c.schedules++
}

func (c *countingTracer) Round(block uint64, r *Round) {
	if c.rounds == 0 {
		c.first = *r
	}
	c.last = *r
	c.rounds++
}

func (c *countingTracer) Digest(block uint64, h State) {
	c.digests = append(c.digests, h)
}

func TestTracer(t *testing.T) {
	tracer := new(countingTracer)

	e := New()
	e.SetTracer(tracer)
	e.Reset()
	e.Process(&abcBlock)

	if e.Digest() != abcDigest {
		t.Fatalf("tracing changed digest: %v", e.Digest())
	}
	if tracer.schedules != 1 || tracer.rounds != 80 {
		t.Errorf("tracer calls: schedules=%d, rounds=%d",
			tracer.schedules, tracer.rounds)
	}
	if len(tracer.digests) != 1 || tracer.digests[0] != abcDigest {
		t.Errorf("tracer digests: %v", tracer.digests)
	}

	first := Registers{
		A: 0x0116fc33,
		B: 0x67452301,
		C: 0x7bf36ae2,
		D: 0x98badcfe,
		E: 0x10325476,
	}
	if tracer.first.In != (Registers{
		A: IV[0], B: IV[1], C: IV[2], D: IV[3], E: IV[4],
	}) {
		t.Errorf("round 0 input: %v", tracer.first.In)
	}
	if tracer.first.Out != first {
		t.Errorf("round 0 output: got %v, expected %v",
			tracer.first.Out, first)
	}
	last := Registers{
		A: 0x42541b35,
		B: 0x5738d5e1,
		C: 0x21834873,
		D: 0x681e6df6,
		E: 0xd8fdf6ad,
	}
	if tracer.last.T != 79 || tracer.last.Out != last {
		t.Errorf("round %d output: got %v, expected %v",
			tracer.last.T, tracer.last.Out, last)
	}
	if tracer.last.Temp != tracer.last.Out.A {
		t.Errorf("T %08x != a %08x", tracer.last.Temp, tracer.last.Out.A)
	}
}

type mutatingTracer struct{}

func (mutatingTracer) Schedule(block uint64, w *Schedule) {
	w[0] ^= 1
	w[79] = 0
}

func (mutatingTracer) Round(block uint64, r *Round) {
	r.Out.A = 0
	r.W = 0
}

func (mutatingTracer) Digest(block uint64, h State) {
	h[0] = 0
}

func TestTracerWrites(t *testing.T) {
	e := New()
	e.SetTracer(mutatingTracer{})
	e.Reset()
	e.Process(&abcBlock)
	if got := e.Digest(); got != abcDigest {
		t.Errorf("tracer writes changed digest: got %v, expected %v",
			got, abcDigest)
	}
}

func TestParse(t *testing.T) {
	s, err := ParseState("a9993e36 4706816a,ba3e2571 0x7850c26c 9cd0d89d")
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if s != abcDigest {
		t.Errorf("ParseState: got %v, expected %v", s, abcDigest)
	}
	if s.String() != "a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d" {
		t.Errorf("String: %s", s)
	}
	if _, err := ParseState("a9993e36 4706816a"); err == nil {
		t.Errorf("ParseState accepted short state")
	}

	b, err := ParseBlock(abcBlock.String())
	if err != nil {
		t.Fatalf("ParseBlock failed: %v", err)
	}
	if b != abcBlock {
		t.Errorf("ParseBlock: got %v, expected %v", b, abcBlock)
	}
	if _, err := ParseBlock("61626380 xyz"); err == nil {
		t.Errorf("ParseBlock accepted invalid word")
	}
	if _, err := ParseBlock("1 2 3"); !errors.Is(err, ErrBlockSize) {
		t.Errorf("ParseBlock short block: %v", err)
	}
}

func TestSum(t *testing.T) {
	e := New()
	e.Reset()
	e.Process(&abcBlock)
	sum := e.Sum()
	expected := []byte{
		0xa9, 0x99, 0x3e, 0x36, 0x47, 0x06, 0x81, 0x6a, 0xba, 0x3e,
		0x25, 0x71, 0x78, 0x50, 0xc2, 0x6c, 0x9c, 0xd0, 0xd8, 0x9d,
	}
	for i := range expected {
		if sum[i] != expected[i] {
			t.Fatalf("Sum: got %x, expected %x", sum, expected)
		}
	}
}
