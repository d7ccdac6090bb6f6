// Package clipboard owns the system clipboard boundary.
//
// A Provider moves text in and out of the system clipboard. Two
// implementations ship: Command shells out to the platform tools (pbcopy,
// wl-copy, xclip, xsel) and OSC52 emits the terminal escape sequence so the
// hosting terminal stores the copy, which also works over SSH.
//
// Boundary is what the rest of the application talks to. It routes outgoing
// text through the outbound sanitize pipeline and incoming text through the
// inbound one, and exposes CopyRaw/PasteRaw for deliberately bypassing
// sanitization.
//
// History keeps a bounded most-recent-first log of captures for the
// interactive picker.
package clipboard
