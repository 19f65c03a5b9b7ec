// Package capacity decides whether the board tiers have room. It performs no
// I/O; callers pass live counts.
package capacity

const (
	DefaultMaxActive = 50
	DefaultMaxCore   = 12
)

// Limits holds the two tier ceilings. They are independent: a full core tier
// never blocks active admission and vice versa.
type Limits struct {
	MaxActive int
	MaxCore   int
}

func DefaultLimits() Limits {
	return Limits{MaxActive: DefaultMaxActive, MaxCore: DefaultMaxCore}
}

// CanAdmit reports whether a new active post fits.
func CanAdmit(activeCount int64, maxActive int) bool {
	return activeCount < int64(maxActive)
}

// CanPromoteToCore reports whether one more post fits in the core tier.
func CanPromoteToCore(coreCount int64, maxCore int) bool {
	return coreCount < int64(maxCore)
}

func (l Limits) CanAdmit(activeCount int64) bool {
	return CanAdmit(activeCount, l.MaxActive)
}

func (l Limits) CanPromoteToCore(coreCount int64) bool {
	return CanPromoteToCore(coreCount, l.MaxCore)
}
