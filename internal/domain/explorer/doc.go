/*
Package explorer implements the navigation and selection engine of the UI
process.

An Engine owns one State: the current directory and its entries, the
selection, back/forward history, and the view, sort and search preferences.
It talks to the privileged process only through bridge.API and turns every
result into a state transition. Read failures and failed mutations end up
in State.Error; nothing is returned to the caller.

Actions that call the bridge are serialized. State can be read at any time,
including while an action is loading, and observers are handed a copy after
every change.
*/
package explorer
