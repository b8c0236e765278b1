// Package parallel implements the block-parallel bulk driver: it applies
// a per-block transform across a buffer of independent blocks.
//
// The worker partitioning is grounded on the gocryptfs content-encryption
// layer's encryptBlocksParallel: a fixed number of goroutines, each owning
// a disjoint, contiguous [low:high) slice of the buffer, synchronized by a
// sync.WaitGroup. No block index is ever touched by more than one worker.
package parallel

import (
	"runtime"
	"sync"

	"github.com/grasshopper-go/kuznyechik/src/block"
)

// Direction selects which per-block transform TransformBuffer applies.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// BlockFunc transforms a single block; it must not mutate shared state
// other than the block it returns.
type BlockFunc func(block.Block) block.Block

// TransformBuffer replaces every block in buf with encryptFn(block) or
// decryptFn(block) according to dir, visiting blocks in an unspecified
// order split across workers goroutines. A workers value <= 0 defaults to
// runtime.NumCPU(). TransformBuffer blocks until every block has been
// updated: its return is a synchronization point after which every worker
// has completed.
func TransformBuffer(buf block.Buffer, dir Direction, encryptFn, decryptFn BlockFunc, workers int) {
	if len(buf) == 0 {
		return
	}

	fn := encryptFn
	if dir == Decrypt {
		fn = decryptFn
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(buf) {
		workers = len(buf)
	}

	groupSize := len(buf) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		low := w * groupSize
		high := low + groupSize
		if w == workers-1 {
			high = len(buf)
		}

		wg.Add(1)
		go func(low, high int) {
			defer wg.Done()
			for i := low; i < high; i++ {
				buf[i] = fn(buf[i])
			}
		}(low, high)
	}
	wg.Wait()
}
