package ecs

import "strconv"

// Entity is a packed actor handle: slot id in the low bits, slot generation in the
// high bits. A handle goes stale once its slot is reclaimed and reused.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// Slot is the 1-based store slot the handle refers to.
func (e Entity) Slot() int {
	return int(e.id())
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
