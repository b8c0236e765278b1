package linear

import (
	"testing"

	"github.com/grasshopper-go/kuznyechik/src/block"
)

func sampleBlock() block.Block {
	b, _ := block.New([]byte{
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x00,
		0xff, 0xee, 0xdd, 0xcc, 0xbb, 0xaa, 0x99, 0x88,
	})
	return b
}

func TestSInvUndoesS(t *testing.T) {
	b := sampleBlock()
	if got := SInv(S(b)); !got.Equal(b) {
		t.Fatalf("FAILED: SInv(S(x)) != x: got %s, want %s", got, b)
	}
}

func TestRInvUndoesR(t *testing.T) {
	b := sampleBlock()
	if got := RInv(R(b)); !got.Equal(b) {
		t.Fatalf("FAILED: RInv(R(x)) != x: got %s, want %s", got, b)
	}
}

func TestLIsSixteenR(t *testing.T) {
	b := sampleBlock()

	x := b
	for i := 0; i < 16; i++ {
		x = R(x)
	}

	if got := L(b); !got.Equal(x) {
		t.Fatalf("FAILED: L(x) != R applied 16 times: got %s, want %s", got, x)
	}
}

func TestLInvUndoesL(t *testing.T) {
	b := sampleBlock()
	if got := LInv(L(b)); !got.Equal(b) {
		t.Fatalf("FAILED: LInv(L(x)) != x: got %s, want %s", got, b)
	}
}
