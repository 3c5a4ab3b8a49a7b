// Package script lets Lua code register gestures.
//
// A Runtime exposes a single global table, gestures, to the scripts it runs:
//
//	gestures.register{
//	    element = "board",
//	    type    = "numbered-clicks",
//	    count   = 2,
//	    action  = function(id) print("double click on " .. id) end,
//	}
//
//	gestures.register{
//	    element = "board",
//	    type    = "swipe-left",
//	    start   = function(id) end,
//	    finish  = function(id) end,
//	}
//
//	gestures.register{element = "board", type = "keystroke", keys = {"ctrl", "a"}, action = ...}
//
// keys may also be a chord string such as "ctrl+a". Callbacks receive the
// element id. gestures.types lists the accepted gesture types.
//
// IMPORTANT: gopher-lua's LState is not goroutine-safe. Runtime serializes
// every entry into Lua, including callbacks fired from recognizer timers.
package script
