// Package lifecycle manages which chunks of a world.Globe are resident in
// memory: loading chunks near points of interest, and evicting the most
// distant ones once the loaded set grows too large. Grounded in
// chunk_system.rs's ChunkSystem.
package lifecycle

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"planetkit/internal/grid"
	"planetkit/internal/logging"
	"planetkit/internal/planet"
	"planetkit/internal/profiling"
	"planetkit/internal/world"
)

const (
	// MaxChunksLoaded is the point at which Manager starts evicting
	// chunks on its next Tick.
	MaxChunksLoaded = 200
	// CullChunksDownTo is how many chunks remain after an eviction pass.
	// Leaving a gap below MaxChunksLoaded avoids evicting and
	// immediately reloading the same chunk every tick.
	CullChunksDownTo = 150
)

// Manager loads and unloads chunks for a world.Globe on behalf of whatever
// points of interest (player positions, cameras, etc.) the caller tells it
// about each tick.
type Manager struct {
	log logging.Logger
}

// NewManager builds a Manager.
func NewManager(log logging.Logger) *Manager {
	return &Manager{log: log}
}

// EnsureEssentialChunksPresent loads the chunk containing poi and every
// chunk reachable from it within two hex-edge steps. Two steps are kept
// essential (rather than one) because a single user action can cross more
// than one cell boundary, e.g. stepping up a ledge moves forward and up at
// once.
func (m *Manager) EnsureEssentialChunksPresent(globe *world.Globe, poi grid.Point3) {
	posInOwningRoot := world.NewPosInOwningRoot(poi, globe.Spec().RootResolution)
	chunkOrigin := globe.OriginOfChunkOwning(posInOwningRoot)
	globe.EnsureChunkPresent(chunkOrigin)

	c, ok := globe.ChunkAt(chunkOrigin)
	if !ok {
		return
	}
	accessibleChunks := append([]world.ChunkOrigin(nil), c.AccessibleChunks...)

	for _, accessibleOrigin := range accessibleChunks {
		globe.EnsureChunkPresent(accessibleOrigin)

		next, ok := globe.ChunkAt(accessibleOrigin)
		if !ok {
			continue
		}
		for _, nextOrigin := range next.AccessibleChunks {
			globe.EnsureChunkPresent(nextOrigin)
		}
	}
}

// EvictExcessChunks removes the loaded chunks farthest from every point in
// pois once the globe has at least MaxChunksLoaded resident, bringing the
// count down to CullChunksDownTo. Distance is measured from each chunk's
// bottom-center to its nearest point of interest.
func (m *Manager) EvictExcessChunks(globe *world.Globe, origins []world.ChunkOrigin, pois []grid.Point3) []world.ChunkOrigin {
	if len(origins) < MaxChunksLoaded || len(pois) == 0 {
		return nil
	}

	spec := globe.Spec()
	type distancedOrigin struct {
		origin   world.ChunkOrigin
		distance float64
	}

	poiPoints := make([]mgl64.Vec3, len(pois))
	for i, poi := range pois {
		poiPoints[i] = spec.CellBottomCenter(poi)
	}

	// globe.LoadedOrigins() never repeats an origin, but callers sometimes
	// pass a freshly-assembled slice of their own; dedupe by cache key
	// rather than the full struct so this stays cheap on a long list.
	seen := make(map[uint64]struct{}, len(origins))
	distances := make([]distancedOrigin, 0, len(origins))
	for _, origin := range origins {
		key := origin.CacheKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		bottomCenter := spec.CellBottomCenter(origin.Pos())
		nearest := nearestDistance(bottomCenter, poiPoints)
		distances = append(distances, distancedOrigin{origin: origin, distance: nearest})
	}

	sort.Slice(distances, func(i, j int) bool {
		return distances[i].distance > distances[j].distance
	})

	numToRemove := len(origins) - CullChunksDownTo
	if numToRemove > len(distances) {
		numToRemove = len(distances)
	}

	removed := make([]world.ChunkOrigin, 0, numToRemove)
	for i := 0; i < numToRemove; i++ {
		globe.RemoveChunk(distances[i].origin)
		removed = append(removed, distances[i].origin)
	}

	if len(removed) > 0 {
		m.log.Debug("evicted chunks", "count", len(removed))
	}
	return removed
}

// FindGround searches upward from bedrock in the column under column for
// the lowest cell made of material, loading whatever chunks it needs to
// along the way. It's the mechanism used to place a new point of interest
// onto solid ground rather than floating in the air or buried underground.
func (m *Manager) FindGround(globe *world.Globe, column grid.Point3, material planet.Material) (grid.Point3, bool) {
	return globe.FindLowestCellContaining(column, material)
}

// Tick runs one lifecycle pass for globe: first evicting the most distant
// chunks if the loaded set has grown too large, then ensuring every chunk
// essential to each point of interest is present, and finally propagating
// authoritative cell data to any chunks that just became neighbors of a
// freshly loaded chunk. Running eviction before loading avoids transiently
// exceeding MaxChunksLoaded by more than the size of one essential set.
func (m *Manager) Tick(globe *world.Globe, pois []grid.Point3) {
	defer profiling.Track("lifecycle.Tick")()

	func() {
		defer profiling.Track("lifecycle.EvictExcessChunks")()
		m.EvictExcessChunks(globe, globe.LoadedOrigins(), pois)
	}()

	func() {
		defer profiling.Track("lifecycle.EnsureEssentialChunksPresent")()
		for _, poi := range pois {
			m.EnsureEssentialChunksPresent(globe, poi)
		}
	}()

	func() {
		defer profiling.Track("world.CopyAllAuthoritativeCells")()
		globe.CopyAllAuthoritativeCells()
	}()
}

func nearestDistance(point mgl64.Vec3, pois []mgl64.Vec3) float64 {
	best := point.Sub(pois[0]).Len()
	for _, poi := range pois[1:] {
		d := point.Sub(poi).Len()
		if d < best {
			best = d
		}
	}
	return best
}
