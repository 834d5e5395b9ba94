package model

import "errors"

var (
	// ErrInputRejected is returned when a file is not a recognised source file.
	ErrInputRejected = errors.New("input rejected")

	// ErrLayoutUnclassifiable is returned when no layout heuristic matched the
	// project root. The project structure needs fixing, not a rebuild.
	ErrLayoutUnclassifiable = errors.New("project layout could not be determined")

	// ErrNoExistingArtifact reports that candidates were generated but none
	// exists yet. The usual remedy is building the project.
	ErrNoExistingArtifact = errors.New("no existing class file found, compile the project first")
)
