package drive

import (
	"context"
	"fmt"
)

// SharedDriveFinder looks up shared drives by exact name
type SharedDriveFinder interface {
	FindSharedDrives(ctx context.Context, name string) ([]*SharedDrive, error)
}

// DriveScope is the result of resolving an optional shared drive name.
// The zero value means "no shared drive" (My Drive / all drives).
type DriveScope struct {
	ID   string
	Name string
}

// Resolved reports whether the scope points at a shared drive
func (s DriveScope) Resolved() bool {
	return s.ID != ""
}

// Parent returns the parent ID for a new object: an explicit parent wins,
// otherwise the shared drive root, otherwise "" (the user's root).
func (s DriveScope) Parent(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return s.ID
}

// DriveNotFoundError is returned when no shared drive matches the requested name
type DriveNotFoundError struct {
	Name string
}

func (e *DriveNotFoundError) Error() string {
	return fmt.Sprintf("Shared drive \"%s\" not found. Please check the drive name and ensure you have access to it.", e.Name)
}

// DriveLookupError is returned when the shared drive lookup itself fails
type DriveLookupError struct {
	Name string
	Err  error
}

func (e *DriveLookupError) Error() string {
	return fmt.Sprintf("Error finding shared drive \"%s\": %v", e.Name, e.Err)
}

func (e *DriveLookupError) Unwrap() error {
	return e.Err
}

// ResolveSharedDrive resolves an optional shared drive name to its ID.
// An empty name resolves to the zero scope without contacting the service.
// When several drives share the name, the first one returned wins.
func ResolveSharedDrive(ctx context.Context, finder SharedDriveFinder, name string) (DriveScope, error) {
	if name == "" {
		return DriveScope{}, nil
	}

	drives, err := finder.FindSharedDrives(ctx, name)
	if err != nil {
		return DriveScope{}, &DriveLookupError{Name: name, Err: err}
	}
	if len(drives) == 0 {
		return DriveScope{}, &DriveNotFoundError{Name: name}
	}

	return DriveScope{ID: drives[0].ID, Name: name}, nil
}
