package noise

import (
	"fmt"
	"time"

	"github.com/matrixpeckham/gonoise/internal/logx"
	"go.uber.org/zap"
)

// mapBuilder holds the configuration shared by every NoiseMapBuilder
// (plane, cylinder, sphere): the module graph to sample, the destination
// grid, and its resolution.
type mapBuilder struct {
	sourceModule          Module
	destMap               *NoiseMap
	destWidth, destHeight int
}

// SetSourceModule wires the root module to sample.
func (b *mapBuilder) SetSourceModule(m Module) { b.sourceModule = m }

// SetDestNoiseMap wires the output grid. Build resizes it to the
// configured dest size before writing.
func (b *mapBuilder) SetDestNoiseMap(m *NoiseMap) { b.destMap = m }

// SetDestSize sets the output grid's resolution.
func (b *mapBuilder) SetDestSize(width, height int) {
	b.destWidth = width
	b.destHeight = height
}

func (b *mapBuilder) validate(builderName string) error {
	if b.sourceModule == nil {
		return fmt.Errorf("noise: %s: %w", builderName, ErrNoSourceModule)
	}
	if b.destMap == nil {
		return fmt.Errorf("noise: %s: %w", builderName, ErrNoDestNoiseMap)
	}
	if b.destWidth <= 0 || b.destHeight <= 0 {
		return invalidParam(builderName, "destination size must be positive")
	}
	return nil
}

func logBuildStart(builderName string, width, height int) time.Time {
	logx.Log.Debug("noise map build starting",
		zap.String("builder", builderName),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return time.Now()
}

func logBuildDone(builderName string, start time.Time, err error) {
	if err != nil {
		logx.Log.Warn("noise map build failed",
			zap.String("builder", builderName),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	logx.Log.Debug("noise map build finished",
		zap.String("builder", builderName),
		zap.Duration("elapsed", time.Since(start)),
	)
}
