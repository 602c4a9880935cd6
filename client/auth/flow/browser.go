package flow

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/viant/authprobe/client/auth/flow/browser"
)

type BrowserFlow struct {
	open func(URL string) *exec.Cmd
}

func (s *BrowserFlow) Navigate(ctx context.Context, URL string) error {
	cmd := s.open(URL)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser %v", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func NewBrowserFlow() *BrowserFlow {
	return &BrowserFlow{open: browser.Open}
}
