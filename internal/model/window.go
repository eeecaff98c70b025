package model

// Window describes a top-level X11 window.
// Bounds is x, y, width, height with the origin relative to the root window.
type Window struct {
	ID      uint32 `yaml:"id"                json:"id"`
	Title   string `yaml:"title"             json:"title"`
	Class   string `yaml:"class,omitempty"   json:"class,omitempty"`
	PID     int    `yaml:"pid,omitempty"     json:"pid,omitempty"`
	Bounds  [4]int `yaml:"bounds"            json:"bounds"`
	Mapped  bool   `yaml:"mapped"            json:"mapped"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}
