package console

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// loadConfig decodes the YAML document at URL into options.
func loadConfig(ctx context.Context, fs afs.Service, URL string, options *Options) error {
	URL = url.Normalize(URL, file.Scheme)
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	if err = yaml.Unmarshal(data, options); err != nil {
		return fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return nil
}
