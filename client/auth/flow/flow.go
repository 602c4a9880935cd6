package flow

import "context"

// Navigator sends the browsing context to URL.
type Navigator interface {
	Navigate(ctx context.Context, URL string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, URL string) error

func (f NavigatorFunc) Navigate(ctx context.Context, URL string) error {
	return f(ctx, URL)
}
