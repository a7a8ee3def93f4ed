package config

import "image/color"

// ModeID identifies one of the two physics/control profiles.
type ModeID int

const (
	// ModeFlap is free-fall with a jump impulse. Leaving the screen is fatal.
	ModeFlap ModeID = iota
	// ModeFlip is floor/ceiling running with gravity inversion. The player is clamped.
	ModeFlip
)

// Other returns the mode a pickup switches to.
func (m ModeID) Other() ModeID {
	if m == ModeFlap {
		return ModeFlip
	}
	return ModeFlap
}

func (m ModeID) String() string {
	switch m {
	case ModeFlap:
		return "FLAP"
	case ModeFlip:
		return "FLIP"
	}
	return "UNKNOWN"
}

// ModeConfig is the physics profile and palette for a single mode
type ModeConfig struct {
	Gravity        float64 `toml:"gravity"`
	JumpImpulse    float64 `toml:"jump_impulse"`    // mode A only, negative is up
	RotationFactor float64 `toml:"rotation_factor"` // radians of tilt per unit of vertical speed
	MaxRotation    float64 `toml:"max_rotation"`

	PlayerColor    color.RGBA `toml:"-"`
	ObstacleColor  color.RGBA `toml:"-"`
	BackgroundTop  color.RGBA `toml:"-"`
	BackgroundBase color.RGBA `toml:"-"`
	Label          string     `toml:"-"`
}

// PlayerConfig contains player geometry
type PlayerConfig struct {
	Size   float64 `toml:"size"`
	StartX float64 `toml:"start_x"` // fixed horizontal position in pixels
}

// SpawnConfig controls obstacle layout and cadence
type SpawnConfig struct {
	ObstacleInterval int     `toml:"obstacle_interval"` // frames between spawns
	ObstacleWidth    float64 `toml:"obstacle_width"`
	GapSize          float64 `toml:"gap_size"`   // mode A vertical opening
	GapMargin        float64 `toml:"gap_margin"` // min distance of the gap from top/bottom
	BlockMinHeight   float64 `toml:"block_min_height"`
	BlockMaxHeight   float64 `toml:"block_max_height"`
	DespawnMargin    float64 `toml:"despawn_margin"` // trailing edge must be this far past x=0
	SwitchClearRatio float64 `toml:"switch_clear_ratio"`
}

// PickupConfig controls the mode switch token
type PickupConfig struct {
	ScoreThreshold int        `toml:"score_threshold"`
	Cadence        int        `toml:"cadence"` // frames; spawn only when Frame%Cadence == 0
	Size           float64    `toml:"size"`
	SpinSpeed      float64    `toml:"spin_speed"` // radians per frame
	Color          color.RGBA `toml:"-"`
}

// SpeedConfig controls the scroll speed
type SpeedConfig struct {
	Initial         float64 `toml:"initial"`
	SwitchIncrement float64 `toml:"switch_increment"`
	RampInterval    int     `toml:"ramp_interval"` // frames, 0 disables the ramp
	RampIncrement   float64 `toml:"ramp_increment"`
	RampMax         float64 `toml:"ramp_max"`
}

// CollisionConfig contains the AABB forgiveness margin
type CollisionConfig struct {
	Margin   float64 `toml:"margin"`
	CellSize int     `toml:"cell_size"` // resolv space cell size
	SpacePad int     `toml:"space_pad"` // extra space to the right for off-screen spawns
}

// ScreenShakeConfig contains screen shake values
type ScreenShakeConfig struct {
	Decay          float64 `toml:"decay"` // multiplier applied every frame
	Floor          float64 `toml:"floor"` // below this the shake snaps to zero
	SwitchJolt     float64 `toml:"switch_jolt"`
	DeathIntensity float64 `toml:"death_intensity"`
}

// ParticleConfig controls the visual-only particle bursts
type ParticleConfig struct {
	LifeDecrement float64      `toml:"life_decrement"`
	JumpCount     int          `toml:"jump_count"`
	SwitchCount   int          `toml:"switch_count"`
	DeathCount    int          `toml:"death_count"`
	MaxSpeed      float64      `toml:"max_speed"`
	MinSize       float64      `toml:"min_size"`
	MaxSize       float64      `toml:"max_size"`
	DeathColors   []color.RGBA `toml:"-"`
	SwitchColors  []color.RGBA `toml:"-"`
}

// StarfieldConfig controls the background stars
type StarfieldConfig struct {
	Count       int
	MinSize     float64
	MaxSize     float64
	Parallax    float64 // fraction of scroll speed applied to stars
	Color       color.RGBA
	TwinkleRate float64
}

// GridConfig controls the mode B grid overlay
type GridConfig struct {
	Spacing float64
	Color   color.RGBA
}

// PersistenceConfig names the local storage slots
type PersistenceConfig struct {
	AppName      string
	HighScoreKey string
}

// HUDConfig contains in-game text layout
type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
	DimColor  color.RGBA
}

// OverlayConfig contains menu/game over panel configuration
type OverlayConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
	Hint            string
	FadeSeconds     float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Modes map[ModeID]*ModeConfig
var Spawn SpawnConfig
var Pickup PickupConfig
var Speed SpeedConfig
var Collision CollisionConfig
var ScreenShake ScreenShakeConfig
var Particles ParticleConfig
var Starfield StarfieldConfig
var Grid GridConfig
var Persistence PersistenceConfig
var HUD HUDConfig
var Menu OverlayConfig
var GameOver OverlayConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan       = color.RGBA{R: 0, G: 229, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 170, A: 255}
	Gold       = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Violet     = color.RGBA{R: 157, G: 78, B: 221, A: 255}
	NeonGreen  = color.RGBA{R: 57, G: 255, B: 20, A: 255}
	DeepSpace  = color.RGBA{R: 10, G: 5, B: 30, A: 255}
	Midnight   = color.RGBA{R: 30, G: 10, B: 60, A: 255}
	DarkTeal   = color.RGBA{R: 0, G: 30, B: 40, A: 255}
	Abyss      = color.RGBA{R: 0, G: 5, B: 15, A: 255}
	GridBlue   = color.RGBA{R: 0, G: 36, B: 40, A: 40} // premultiplied
	TextDim    = color.RGBA{R: 180, G: 180, B: 200, A: 255}
	PanelBlack = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 450,
		TPS:    60,
	}

	Player = PlayerConfig{
		Size:   30,
		StartX: 100,
	}

	Modes = map[ModeID]*ModeConfig{
		ModeFlap: {
			Gravity:        0.5,
			JumpImpulse:    -8,
			RotationFactor: 0.1,
			MaxRotation:    0.8,
			PlayerColor:    Cyan,
			ObstacleColor:  Magenta,
			BackgroundTop:  Midnight,
			BackgroundBase: DeepSpace,
			Label:          "FLAP",
		},
		ModeFlip: {
			Gravity:        0.8,
			RotationFactor: 0,
			PlayerColor:    Gold,
			ObstacleColor:  NeonGreen,
			BackgroundTop:  DarkTeal,
			BackgroundBase: Abyss,
			Label:          "FLIP",
		},
	}

	Spawn = SpawnConfig{
		ObstacleInterval: 90,
		ObstacleWidth:    50,
		GapSize:          150,
		GapMargin:        50,
		BlockMinHeight:   40,
		BlockMaxHeight:   180,
		DespawnMargin:    50,
		SwitchClearRatio: 0.8,
	}

	Pickup = PickupConfig{
		ScoreThreshold: 5,
		Cadence:        60,
		Size:           30,
		SpinSpeed:      0.05,
		Color:          Violet,
	}

	Speed = SpeedConfig{
		Initial:         5,
		SwitchIncrement: 1,
		RampInterval:    600, // every 10s at 60 TPS
		RampIncrement:   0.25,
		RampMax:         10,
	}

	Collision = CollisionConfig{
		Margin:   5,
		CellSize: 32,
		SpacePad: 256,
	}

	ScreenShake = ScreenShakeConfig{
		Decay:          0.9,
		Floor:          0.1,
		SwitchJolt:     15,
		DeathIntensity: 20,
	}

	Particles = ParticleConfig{
		LifeDecrement: 0.02, // 50 frames
		JumpCount:     5,
		SwitchCount:   30,
		DeathCount:    50,
		MaxSpeed:      6,
		MinSize:       2,
		MaxSize:       5,
		DeathColors:   []color.RGBA{LightRed, Orange, Gold},
		SwitchColors:  []color.RGBA{Violet, Cyan, White},
	}

	Starfield = StarfieldConfig{
		Count:       100,
		MinSize:     0.5,
		MaxSize:     2,
		Parallax:    0.1,
		Color:       White,
		TwinkleRate: 0.05,
	}

	Grid = GridConfig{
		Spacing: 40,
		Color:   GridBlue,
	}

	Persistence = PersistenceConfig{
		AppName:      "cosmicdash",
		HighScoreKey: "cosmicDashHighScore",
	}

	HUD = HUDConfig{
		Margin:    16,
		LineGap:   22,
		TextColor: White,
		DimColor:  TextDim,
	}

	Menu = OverlayConfig{
		BackgroundColor: PanelBlack,
		PanelColor:      color.RGBA{R: 20, G: 15, B: 45, A: 230},
		TitleColor:      Cyan,
		TextColor:       White,
		ButtonIdle:      color.RGBA{R: 60, G: 40, B: 120, A: 255},
		ButtonHover:     color.RGBA{R: 90, G: 60, B: 170, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 25, B: 90, A: 255},
		Title:           "COSMIC DASH",
		Hint:            "SPACE / Click to start",
		FadeSeconds:     0.4,
	}

	GameOver = OverlayConfig{
		BackgroundColor: color.RGBA{R: 40, G: 0, B: 10, A: 180},
		PanelColor:      color.RGBA{R: 45, G: 10, B: 20, A: 230},
		TitleColor:      LightRed,
		TextColor:       White,
		ButtonIdle:      color.RGBA{R: 120, G: 30, B: 50, A: 255},
		ButtonHover:     color.RGBA{R: 170, G: 45, B: 70, A: 255},
		ButtonPressed:   color.RGBA{R: 90, G: 20, B: 35, A: 255},
		Title:           "GAME OVER",
		Hint:            "SPACE / Click to retry",
		FadeSeconds:     0.6,
	}
}
