package encode

import "github.com/fatih/color"

// Colors maps document elements to sprintf-style colorizers.
type Colors struct {
	Field  func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Null   func(string, ...any) string
	Punct  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field:  color.RGB(196, 96, 16).SprintfFunc(),
		String: color.GreenString,
		Number: color.RGB(128, 216, 236).SprintfFunc(),
		Bool:   color.MagentaString,
		Null:   color.HiBlackString,
		Punct:  color.RGB(255, 0, 196).SprintfFunc(),
	}
}
