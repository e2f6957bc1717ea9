// Package menu is the interactive front end over a loaded core.Graph.
//
// Dispatch answers one command; Run drives the prompt loop:
//
//	What would you like to do today?
//	1: Find a user's connections
//	2: Get friend suggestions
//	3: See influential users in your circle
//	Enter your choice:
//
// Input is read as whitespace-delimited tokens, so a handle is a single
// token. The loop continues while the answer to the continue prompt is
// "Y" or "y" and ends quietly at end of input. Neither function keeps
// state between calls; the graph is owned by the caller.
package menu
