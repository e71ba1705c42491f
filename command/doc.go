// SPDX-License-Identifier: MIT

// Package command parses and runs the remote text commands a viewer can
// send to a running puzzle:
//
//	go | activate | stop | run | start | on | off
//	press <color> [<color> ...]
//
// Colors are full names or first letters, separated by spaces, commas,
// semicolons or dashes ("press r b k", "press red-blue-key").
package command
