// Package ui implements the Flightly terminal interface on Bubble Tea.
//
// # Screens
//
// The root Model renders a header, a per-screen command bar and one content
// card. Which card is shown follows state.Machine:
//
//   - Home: the search form (From, To, Date), the search button and the
//     Travel Roulette button.
//   - Results: flights to the searched destination. Enter books the selected
//     flight and shows a confirmation notice; nothing is stored.
//   - Profile: the loyalty card with a tier progress bar.
//
// Letter shortcuts (q, ?, p, b, j, k, s) only apply outside Home, where no
// input has focus. Control keys (ctrl+c, ctrl+p, ctrl+r, ctrl+t, f1, esc)
// work everywhere.
//
// # Roulette
//
// Starting a spin takes a ticket from the machine and schedules a tea.Tick for
// the configured delay. The tick draws the pick and returns it as a
// rouletteSettledMsg. Going home in between invalidates the ticket, so the
// late result is dropped. Visiting Profile does not.
//
// # Themes
//
// ctrl+t cycles Flightly, Dracula and Slate. The choice is saved through the
// prefs package and restored on the next start.
package ui
