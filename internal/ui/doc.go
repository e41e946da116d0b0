// Package ui provides the terminal building blocks of the console: menus,
// dialogs, field forms, the line-collection editor, and the layout helpers
// they share. All models follow the same contract: the parent feeds them
// messages, polls Done, and reads the tagged result.
package ui
