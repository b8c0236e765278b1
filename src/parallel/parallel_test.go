package parallel

import (
	"testing"

	"github.com/grasshopper-go/kuznyechik/src/block"
)

func flip(b block.Block) block.Block {
	var out block.Block
	for i, v := range b {
		out[i] = ^v
	}
	return out
}

func buildBuffer(n int) block.Buffer {
	buf := make(block.Buffer, n)
	for i := range buf {
		buf[i][0] = byte(i)
	}
	return buf
}

func TestTransformBufferEncryptDecryptRoundTrip(t *testing.T) {
	buf := buildBuffer(37)
	original := make(block.Buffer, len(buf))
	copy(original, buf)

	TransformBuffer(buf, Encrypt, flip, flip, 4)
	TransformBuffer(buf, Decrypt, flip, flip, 4)

	for i := range buf {
		if !buf[i].Equal(original[i]) {
			t.Fatalf("FAILED: block %d: got %s, want %s", i, buf[i], original[i])
		}
	}
}

func TestTransformBufferIndependentOfWorkerCount(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 8, 100} {
		buf := buildBuffer(23)
		TransformBuffer(buf, Encrypt, flip, flip, workers)

		want := buildBuffer(23)
		TransformBuffer(want, Encrypt, flip, flip, 1)

		for i := range buf {
			if !buf[i].Equal(want[i]) {
				t.Fatalf("FAILED: workers=%d: block %d differs from single-worker baseline", workers, i)
			}
		}
	}
}

func TestTransformBufferEmpty(t *testing.T) {
	buf := block.Buffer{}
	TransformBuffer(buf, Encrypt, flip, flip, 4)
	if len(buf) != 0 {
		t.Fatalf("FAILED: empty buffer grew to length %d", len(buf))
	}
}
