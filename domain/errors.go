package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPostTooLong indicates the message exceeds the character limit.
	ErrPostTooLong = errors.New("tuit exceeds character limit")

	// ErrEmptyPost indicates the user submitted an empty message.
	ErrEmptyPost = errors.New("tuit cannot be empty")

	// ErrNoSession indicates no login token is available.
	ErrNoSession = errors.New("not logged in")
)

// MaxMessageLength is the character limit enforced before a tuit is sent.
const MaxMessageLength = 280
