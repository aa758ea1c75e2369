// Package messages holds user-facing strings shared by commands and the parser.
package messages

const (
	UnknownCommand        = "Unknown command"
	InvalidCommandFormat  = "Invalid command format! \n%s"
	PersonsListedOverview = "%d persons listed!"
	ListedAllPersons      = "Listed all persons"
	Exiting               = "Exiting Address Book as requested ..."
	DidYouMean            = "Did you mean %q?"
)
