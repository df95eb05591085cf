// Package ui contains the Bubble Tea program that hosts the power menu.
//
// The screen is a one-line bar with the program title on the left and the
// power menu trigger on the right. When the menu is expanded its popover is
// drawn under the trigger, right-aligned, and a footer lists the key hints.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Messages with a registered handler (key presses, window resizes) are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function.
//   - Everything the shell does not consume is handed to the power menu, which
//     owns the collapsed/expanded state and forwards input to its backend.
//
// The shell never looks at backend state. It only asks the power menu whether
// it is expanded, so that plain letters reach the backend's filter instead of
// quitting the program.
package ui
