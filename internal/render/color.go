package render

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownColor = errors.New("render: unknown color")

const (
	Black = "#000000"
	White = "#ffffff"
	Red   = "#ff0000"
)

// Short and long color names accepted in scenario files.
var namedColors = map[string]string{
	"b": "#0000ff", "blue": "#0000ff",
	"g": "#008000", "green": "#008000",
	"r": Red, "red": Red,
	"c": "#00bfbf", "cyan": "#00ffff",
	"m": "#bf00bf", "magenta": "#ff00ff",
	"y": "#bfbf00", "yellow": "#ffff00",
	"k": Black, "black": Black,
	"w": White, "white": White,
	"orange": "#ffa500",
	"purple": "#800080",
}

// ResolveColor normalizes a color name or #rrggbb string to lowercase hex.
func ResolveColor(name string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := namedColors[s]; ok {
		return hex, nil
	}
	if len(s) == 7 && s[0] == '#' {
		for _, c := range s[1:] {
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
				return "", fmt.Errorf("%w: %q", ErrUnknownColor, name)
			}
		}
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// RGB splits a #rrggbb string. Malformed input yields white.
func RGB(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return hexByte(hex[1:3]), hexByte(hex[3:5]), hexByte(hex[5:7])
}

func hexByte(s string) uint8 {
	var v uint8
	for _, c := range strings.ToLower(s) {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint8(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint8(c-'a') + 10
		}
	}
	return v
}
