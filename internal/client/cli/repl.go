package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Reset(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Post(ctx context.Context) error
	Feed(ctx context.Context) error
	Like(ctx context.Context) error
	Comment(ctx context.Context) error
	DelComment(ctx context.Context) error
	DelPost(ctx context.Context) error
	Folders(ctx context.Context) error
	NewFolder(ctx context.Context) error
	DelFolder(ctx context.Context) error
	Upload(ctx context.Context) error
	Media(ctx context.Context) error
	LikeMedia(ctx context.Context) error
	CommentMedia(ctx context.Context) error
	DelMedia(ctx context.Context) error
	Tree(ctx context.Context) error
	Chat(ctx context.Context) error
	Send(ctx context.Context) error
	Activity(ctx context.Context) error
	Birthday(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the family tree CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create a profile (with the heritage form)
//	  - login          — open the stored profile
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - profile, edit, birthday, tree
//	  - post, feed, like, comment, delcomment, delpost
//	  - folders, newfolder, delfolder, upload, media,
//	    likemedia, commentmedia, delmedia
//	  - chat, send, activity
//	  - logout, reset, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ft> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, edit, birthday, tree, post, feed, like, comment, delcomment, delpost, folders, newfolder, delfolder, upload, media, likemedia, commentmedia, delmedia, chat, send, activity, logout, reset, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "birthday":
			_ = a.Birthday(ctx)

		case "tree":
			_ = a.Tree(ctx)

		case "post":
			_ = a.Post(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "like":
			_ = a.Like(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "delcomment":
			_ = a.DelComment(ctx)

		case "delpost":
			_ = a.DelPost(ctx)

		case "folders":
			_ = a.Folders(ctx)

		case "newfolder":
			_ = a.NewFolder(ctx)

		case "delfolder":
			_ = a.DelFolder(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "media":
			_ = a.Media(ctx)

		case "likemedia":
			_ = a.LikeMedia(ctx)

		case "commentmedia":
			_ = a.CommentMedia(ctx)

		case "delmedia":
			_ = a.DelMedia(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "send":
			_ = a.Send(ctx)

		case "activity":
			_ = a.Activity(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
