package gal

import (
	"errors"
	"fmt"
)

// Precondition violations. They indicate a caller bug and are raised with
// panic, wrapped so that a recovering caller can still match them with
// errors.Is.
var (
	// ErrUnknownGroup is raised when a group handle is not live.
	ErrUnknownGroup = errors.New("gal: unknown group")

	// ErrNotGrouping is raised by EndGroup without a matching BeginGroup.
	ErrNotGrouping = errors.New("gal: no group is being recorded")

	// ErrGroupRecursion is raised when group replay nests deeper than
	// MaxGroupDepth or a group calls itself.
	ErrGroupRecursion = errors.New("gal: group nesting too deep")

	// ErrGroupInUse is raised when deleting the group being recorded.
	ErrGroupInUse = errors.New("gal: group is being recorded")

	// ErrNoFreeGroup is raised when every group handle is in use.
	ErrNoFreeGroup = errors.New("gal: no free group handle")

	// ErrNotInitialized is raised when drawing outside BeginDrawing/EndDrawing
	// and outside a group.
	ErrNotInitialized = errors.New("gal: drawing surface not initialized")

	// ErrUnknownBuffer is raised by the compositor for an invalid buffer handle.
	ErrUnknownBuffer = errors.New("gal: unknown compositor buffer")
)

// ErrUnsupportedFormat is returned when a frame cannot be laid out in the
// requested texture format.
var ErrUnsupportedFormat = errors.New("gal: unsupported surface format")

func precondition(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
