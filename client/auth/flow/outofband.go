package flow

import (
	"context"
	"fmt"
	"io"
)

// OutOfBandFlow prints the URL for the operator to open manually.
type OutOfBandFlow struct {
	writer io.Writer
}

func (s *OutOfBandFlow) Navigate(ctx context.Context, URL string) error {
	_, err := fmt.Fprintf(s.writer, "Open the following URL in your browser:\n%s\n", URL)
	return err
}

func NewOutOfBandFlow(writer io.Writer) *OutOfBandFlow {
	return &OutOfBandFlow{writer: writer}
}
