// Package config loads gesture settings for the command line tools.
//
// Settings come from three layers, higher overriding lower:
//
//  1. Built-in defaults (see Default)
//  2. A TOML or YAML file, chosen by extension
//  3. Environment variables prefixed GESTURES_
//
// A settings file may also declare elements and bindings. Elements describe
// the rectangles drawn by the terminal front-end; bindings register a gesture
// on one of them and name the message shown when it is recognized.
//
// Example (TOML):
//
//	[gestures]
//	swipe_offset = 40.0
//	click_window = "350ms"
//
//	[log]
//	level = "debug"
//
//	[[elements]]
//	id = "board"
//	x = 2
//	y = 2
//	w = 40
//	h = 12
//
//	[[bindings]]
//	element = "board"
//	gesture = "numbered-clicks"
//	count = 2
//	message = "double click"
package config
