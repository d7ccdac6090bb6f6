// Package lua loads user-scripted sanitize rules written in Lua.
//
// A rule script evaluates to a single function taking the text and returning
// the transformed text:
//
//	-- redact-home.lua
//	return function(text)
//	    return (string.gsub(text, "/home/%w+", "~"))
//	end
//
// Scripts run in a restricted state: only the base, string, table and math
// libraries are opened, and the load/dofile family is removed so a rule
// cannot pull in code from disk. gopher-lua states are single-threaded, so
// each compiled rule serializes its calls with a mutex; the sanitize
// pipeline may still be invoked concurrently.
//
// Rules are total by contract. A Lua runtime error or a non-string return
// yields the input unchanged rather than failing the pipeline.
package lua
