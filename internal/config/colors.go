package config

import (
	"fmt"

	"github.com/derailed/tcell/v2"
)

// Color represents a color in the application
type Color string

const (
	// DefaultColor represents a default color
	DefaultColor Color = "default"

	// TransparentColor represents the terminal bg color
	TransparentColor Color = "-"
)

// NewColor returns a new color
func NewColor(c string) Color {
	return Color(c)
}

// String returns color as string
func (c Color) String() string {
	if c.isHex() {
		return string(c)
	}
	if c == DefaultColor || c == TransparentColor {
		return "-"
	}
	col := c.Color().TrueColor().Hex()
	if col < 0 {
		return "-"
	}
	return fmt.Sprintf("#%06x", col)
}

func (c Color) isHex() bool {
	return len(c) == 7 && c[0] == '#'
}

// Color returns a view color
func (c Color) Color() tcell.Color {
	if c == DefaultColor || c == TransparentColor || c == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c)).TrueColor()
}

// BodyColors defines colors for body elements
type BodyColors struct {
	FgColor Color `yaml:"fgColor"`
	BgColor Color `yaml:"bgColor"`
}

// FrameColors defines colors for UI frame elements
type FrameColors struct {
	BorderColor Color `yaml:"borderColor"`
	FocusColor  Color `yaml:"focusColor"`
	TitleColor  Color `yaml:"titleColor"`
}

// TableColors defines colors for the resource table
type TableColors struct {
	HeaderFgColor Color `yaml:"headerFgColor"`
	SelectedBg    Color `yaml:"selectedBg"`
	SelectedFg    Color `yaml:"selectedFg"`
}

// LinkColors defines colors for HCP link states
type LinkColors struct {
	ConnectedColor    Color `yaml:"connectedColor"`
	DisconnectedColor Color `yaml:"disconnectedColor"`
	UnknownColor      Color `yaml:"unknownColor"`
}

// StatusColors defines colors for status bar messages
type StatusColors struct {
	InfoColor    Color `yaml:"infoColor"`
	WarningColor Color `yaml:"warningColor"`
	ErrorColor   Color `yaml:"errorColor"`
	SuccessColor Color `yaml:"successColor"`
}

// ColorsConfig defines the complete color configuration
type ColorsConfig struct {
	Body   BodyColors   `yaml:"body"`
	Frame  FrameColors  `yaml:"frame"`
	Table  TableColors  `yaml:"table"`
	Link   LinkColors   `yaml:"link"`
	Status StatusColors `yaml:"status"`
}

// LinkStatusColor returns the color for a link status string
func (c *ColorsConfig) LinkStatusColor(status string) Color {
	switch status {
	case "connected":
		return c.Link.ConnectedColor
	case "disconnected":
		return c.Link.DisconnectedColor
	default:
		return c.Link.UnknownColor
	}
}

// StatusColor returns the status bar color for a level name
func (c *ColorsConfig) StatusColor(level string) Color {
	switch level {
	case "warning":
		return c.Status.WarningColor
	case "error":
		return c.Status.ErrorColor
	case "success":
		return c.Status.SuccessColor
	default:
		return c.Status.InfoColor
	}
}

// DefaultColors returns the default color configuration
func DefaultColors() *ColorsConfig {
	return &ColorsConfig{
		Body: BodyColors{
			FgColor: NewColor("#f8f8f2"),
			BgColor: NewColor("#282a36"),
		},
		Frame: FrameColors{
			BorderColor: NewColor("#44475a"),
			FocusColor:  NewColor("#6272a4"),
			TitleColor:  NewColor("#bd93f9"),
		},
		Table: TableColors{
			HeaderFgColor: NewColor("#50fa7b"),
			SelectedBg:    NewColor("#44475a"),
			SelectedFg:    NewColor("#f8f8f2"),
		},
		Link: LinkColors{
			ConnectedColor:    NewColor("#50fa7b"),
			DisconnectedColor: NewColor("#ff5555"),
			UnknownColor:      NewColor("#6272a4"),
		},
		Status: StatusColors{
			InfoColor:    NewColor("#8be9fd"),
			WarningColor: NewColor("#f1fa8c"),
			ErrorColor:   NewColor("#ff5555"),
			SuccessColor: NewColor("#50fa7b"),
		},
	}
}
