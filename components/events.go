package components

import (
	cfg "github.com/automoto/cosmicdash/config"
	"github.com/yohamta/donburi"
)

// EventsData queues what happened this frame for the sound and UI layers
type EventsData struct {
	Pending []cfg.EventID
}

var Events = donburi.NewComponentType[EventsData]()
