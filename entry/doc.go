/*
Package entry implements an ordered list of name / value pairs.

It's meant for things like parsed request parameters or configuration
entries where:

- order of entries matters

- the same name can appear more than once

Lookups can pick the first or the last entry with a given name.
The convention is that later entries override earlier ones
without removing them:

	var l entry.List
	l.Add("role", "admin")
	l.Add("role", "root")
	l.Get("role")     // "admin"
	l.GetLast("role") // "root"

List can be saved to and loaded from a human-readable text file:

	# automatically generated by qentry at Sun, 18 Oct 2026 12:30:05 GMT.
	# /path/to/file.txt
	user=alice
	role=admin

A List is not safe for concurrent use.
*/
package entry
