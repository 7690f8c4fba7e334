package enums

import "strings"

type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

var tileTypeToString = map[TileType]string{
	TileWall:  "WALL",
	TileFloor: "FLOOR",
}

var tileTypeStringToType = map[string]TileType{
	"WALL":  TileWall,
	"FLOOR": TileFloor,
}

func (t TileType) String() string {
	if val, ok := tileTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseTileType: неизвестная строка считается стеной.
func ParseTileType(s string) TileType {
	if val, ok := tileTypeStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return TileWall
}
