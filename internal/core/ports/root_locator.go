package ports

// RootLocator finds the repository root.
//
//go:generate mockgen -source=root_locator.go -destination=mocks/mock_root_locator.go -package=mocks
type RootLocator interface {
	// Locate walks upward from start and returns the nearest directory containing the root marker.
	Locate(start string) (string, error)
}
