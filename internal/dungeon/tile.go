// Package dungeon provides the tile grid, line-of-sight rules, and the
// procedural floor generator for the stealth simulation.
// The package is UI-agnostic and deterministic.
package dungeon

// TileKind identifies what a tile fundamentally is.
type TileKind uint8

const (
	KindFloor TileKind = iota
	KindWall
	KindDoor
	KindExit
	KindHazard
	KindSlow
	KindPickup
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	case KindExit:
		return "exit"
	case KindHazard:
		return "hazard"
	case KindSlow:
		return "slow"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// ItemKind identifies a collectible carried by a pickup tile.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemKeycard
	ItemObjective
)

// String returns the item kind name.
func (i ItemKind) String() string {
	switch i {
	case ItemKeycard:
		return "keycard"
	case ItemObjective:
		return "objective"
	default:
		return "none"
	}
}

// Tile is a tagged variant: Kind selects which attribute fields are
// meaningful. Open is valid only for doors, Armed only for hazards, and Item
// only for pickups. Keeping attributes as typed fields instead of a dynamic
// attribute map makes tiles comparable and cheap to copy.
type Tile struct {
	Kind  TileKind
	Open  bool     // Doors: whether the door is open
	Armed bool     // Hazards: whether the hazard still triggers
	Item  ItemKind // Pickups: what the tile carries
}

// Floor returns a plain floor tile.
func Floor() Tile {
	return Tile{Kind: KindFloor}
}

// Wall returns a wall tile.
func Wall() Tile {
	return Tile{Kind: KindWall}
}

// Door returns a door tile in the given open state.
func Door(open bool) Tile {
	return Tile{Kind: KindDoor, Open: open}
}

// Exit returns the floor-exit tile.
func Exit() Tile {
	return Tile{Kind: KindExit}
}

// Hazard returns an armed hazard tile.
func Hazard() Tile {
	return Tile{Kind: KindHazard, Armed: true}
}

// Slow returns a slow-terrain tile.
func Slow() Tile {
	return Tile{Kind: KindSlow}
}

// Pickup returns a pickup tile carrying the given item.
func Pickup(item ItemKind) Tile {
	return Tile{Kind: KindPickup, Item: item}
}

// Walkable reports whether an agent may occupy this tile. Walkability is a
// pure function of the tile kind and its door state; it never depends on
// occupancy.
func (t Tile) Walkable() bool {
	switch t.Kind {
	case KindFloor, KindExit, KindHazard, KindSlow, KindPickup:
		return true
	case KindDoor:
		return t.Open
	default:
		return false
	}
}

// BlocksSight reports whether the tile blocks line of sight.
// Walls and closed doors block; everything else does not.
func (t Tile) BlocksSight() bool {
	if t.Kind == KindWall {
		return true
	}
	return t.Kind == KindDoor && !t.Open
}
