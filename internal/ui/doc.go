// Package ui is the terminal front-end of the explorer, built on bubbletea.
// It renders an explorer.Engine and turns key presses into engine actions.
package ui
