// Package widget provides material-styled terminal widgets for Bubble Tea
// applications: buttons, selects, snackbars, dialogs, sortable tables, a
// progress indicator, and a responsive application layout that composes them.
//
// Widgets are value types with pure transitions: every state change takes the
// old value and returns a new one, matching Bubble Tea's update model. All
// rendering goes through style records from the material package, so the
// widgets themselves carry no visual constants.
package widget
