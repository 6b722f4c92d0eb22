package noise

import (
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/matrixpeckham/gonoise/internal/logx"
	"go.uber.org/zap"
)

// BuildParallel samples the plane onto the destination map using a
// worker pool, partitioning the image into row bands the way the
// teacher's voxel world generator splits a chunk grid across workers. It
// refuses to run over a module graph containing a Cache node, since
// Cache's single-slot memoization is not safe for concurrent callers.
func (b *PlaneMapBuilder) BuildParallel(workers int) error {
	if err := b.validate("PlaneMapBuilder"); err != nil {
		return err
	}
	if containsCache(b.sourceModule, make(map[Module]bool)) {
		return fmt.Errorf("noise: PlaneMapBuilder.BuildParallel: %w", ErrCacheInParallelBuild)
	}
	if workers < 1 {
		workers = 1
	}

	start := logBuildStart("PlaneMapBuilder.BuildParallel", b.destWidth, b.destHeight)

	b.destMap.SetSize(b.destWidth, b.destHeight)

	xExtent := b.upperXBound - b.lowerXBound
	zExtent := b.upperZBound - b.lowerZBound
	xDelta := xExtent / float64(b.destWidth)
	zDelta := zExtent / float64(b.destHeight)

	pool := pond.NewPool(workers)
	var wg sync.WaitGroup

	rowsPerBand := (b.destHeight + workers - 1) / workers
	for band := 0; band*rowsPerBand < b.destHeight; band++ {
		zStart := band * rowsPerBand
		zEnd := zStart + rowsPerBand
		if zEnd > b.destHeight {
			zEnd = b.destHeight
		}

		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			for zi := zStart; zi < zEnd; zi++ {
				zCur := b.lowerZBound + zDelta*float64(zi)
				for xi := 0; xi < b.destWidth; xi++ {
					xCur := b.lowerXBound + xDelta*float64(xi)

					var finalValue float64
					if b.seamless {
						swValue := b.sourceModule.Value(xCur, 0, zCur)
						seValue := b.sourceModule.Value(xCur+xExtent, 0, zCur)
						nwValue := b.sourceModule.Value(xCur, 0, zCur+zExtent)
						neValue := b.sourceModule.Value(xCur+xExtent, 0, zCur+zExtent)

						xBlend := 1.0 - (xCur-b.lowerXBound)/xExtent
						zBlend := 1.0 - (zCur-b.lowerZBound)/zExtent

						z0 := linearInterp(swValue, seValue, xBlend)
						z1 := linearInterp(nwValue, neValue, xBlend)
						finalValue = linearInterp(z0, z1, zBlend)
					} else {
						finalValue = b.sourceModule.Value(xCur, 0, zCur)
					}
					b.destMap.SetValue(xi, zi, finalValue)
				}
			}
		})
	}

	wg.Wait()
	pool.StopAndWait()

	logx.Log.Debug("noise map parallel build finished",
		zap.Int("workers", workers),
	)
	logBuildDone("PlaneMapBuilder.BuildParallel", start, nil)
	return nil
}

// containsCache walks a module graph depth-first looking for a *Cache
// node. visited guards against infinite recursion if a graph is
// (incorrectly) cyclic.
func containsCache(m Module, visited map[Module]bool) (found bool) {
	if m == nil || visited[m] {
		return false
	}
	visited[m] = true

	if _, ok := m.(*Cache); ok {
		return true
	}

	defer func() {
		if recover() != nil {
			found = false
		}
	}()

	for i := 0; i < m.SourceModuleCount(); i++ {
		src := m.GetSourceModule(i)
		if containsCache(src, visited) {
			return true
		}
	}
	return false
}
