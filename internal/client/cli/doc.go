// Package cli implements the interactive terminal client: a REPL over the
// profile, vault, feed, chat and activity stores, with the mirror sync
// engine handling everything shared between the vault and the feed.
package cli
