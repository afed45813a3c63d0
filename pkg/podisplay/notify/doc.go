// Package notify implements the shell's notification surface: transient
// toasts that dismiss themselves, the persistent message list shown in the
// message popover, and the localized text catalog both draw from.
package notify
