package ports

// PreviewAnalyzer accepts preview clips for background audio analysis.
// Enqueue must not block.
type PreviewAnalyzer interface {
	Enqueue(trackID, previewURL string)
}

// Store is the persistence the service layer needs.
type Store interface {
	VibeRepository
	TrackFeatureStore
}
