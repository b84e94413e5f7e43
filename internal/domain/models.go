package domain

// Source names where a screen's data came from.
type Source string

const (
	SourceMock   Source = "mock"
	SourceRemote Source = "remote"
)

// SourceFor picks the data source from the persisted use-test-data flag.
func SourceFor(useTestData bool) Source {
	if useTestData {
		return SourceMock
	}
	return SourceRemote
}
