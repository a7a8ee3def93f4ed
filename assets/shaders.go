package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GridShader draws the scrolling FLIP mode grid
	GridShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	gridSrc, err := shaderFS.ReadFile("shaders/grid.kage")
	if err != nil {
		return fmt.Errorf("read grid shader: %w", err)
	}
	GridShader, err = ebiten.NewShader(gridSrc)
	if err != nil {
		return fmt.Errorf("compile grid shader: %w", err)
	}
	return nil
}
