package service

import "errors"

var (
	// ErrIncognitoConversation refuses any request that would persist
	// data on behalf of an incognito conversation. This is the one
	// hard stop in the agent; everything else degrades.
	ErrIncognitoConversation = errors.New("incognito conversation cannot store data")

	// ErrEmptyMessage rejects chat messages without text.
	ErrEmptyMessage = errors.New("message text is required")

	// ErrEmptyDocument rejects documents without text content.
	ErrEmptyDocument = errors.New("document has no text content")

	// ErrVersionIsNotSpecified rejects startup without a build version.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
