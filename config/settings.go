package config

// WindowConfig contains desktop window options
type WindowConfig struct {
	Title     string
	Resizable bool
	MinWidth  int
	MinHeight int
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Title:     "Cosmic Dash",
		Resizable: true,
		MinWidth:  320,
		MinHeight: 240,
	}
}
