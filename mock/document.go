package mock

import "kbingest"

var _ kbingest.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of kbingest.DocumentExtractor.
type DocumentExtractor struct {
	ExtractTextFn func(path string) (string, error)
}

func (e *DocumentExtractor) ExtractText(path string) (string, error) {
	return e.ExtractTextFn(path)
}
