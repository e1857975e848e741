package level

import (
	"bytes"
	_ "embed"
)

//go:embed maps/intro.txt
var introMap []byte

// Default returns the embedded intro level. It panics on a parse error since
// the embedded map is validated by the test suite.
func Default(tileSize float64) *TileMap {
	m, err := Parse(bytes.NewReader(introMap), tileSize)
	if err != nil {
		panic("level: embedded intro map is invalid: " + err.Error())
	}
	return m
}
