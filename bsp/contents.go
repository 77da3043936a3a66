package bsp

// Contents bitmask values, a subset of the Source engine's CONTENTS_*
// flags — only the ones needed to decide whether a brush blocks a
// shot/sight trace.
const (
	ContentsSolid    = 0x1
	ContentsWindow   = 0x2
	ContentsGrate    = 0x8
	ContentsMoveable = 0x4000
	ContentsMonster  = 0x2000000
	ContentsDebris   = 0x4000000
)

// MaskShotHull is the bitwise OR of the contents flags that participate
// in a shot/sight trace. Brushes whose Contents doesn't intersect this
// mask are skipped entirely by the traversal.
const MaskShotHull = ContentsSolid | ContentsMoveable | ContentsMonster | ContentsWindow | ContentsDebris | ContentsGrate
