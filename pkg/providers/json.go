package providers

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/oarkflow/ftp/pkg/errs"
	"github.com/oarkflow/ftp/pkg/models"
)

type JsonFileProvider struct {
	remotes map[string]models.Remote
	mu      sync.RWMutex
}

func (p *JsonFileProvider) Lookup(name string) (*models.Remote, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	remote, exists := p.remotes[name]
	if !exists {
		return nil, &errs.UnknownRemoteError{Name: name}
	}
	if remote.Name == "" {
		remote.Name = name
	}
	return &remote, nil
}

func (p *JsonFileProvider) Register(remote models.Remote) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remotes[remote.Name] = remote
}

func NewJsonFileProvider(remotes ...map[string]models.Remote) *JsonFileProvider {
	catalog := make(map[string]models.Remote)
	if len(remotes) > 0 && remotes[0] != nil {
		catalog = remotes[0]
	}
	return &JsonFileProvider{remotes: catalog}
}

// FromFile loads a catalog of named remotes from a JSON file keyed by remote name.
func FromFile(path string) (*JsonFileProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog map[string]models.Remote
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, err
	}
	return NewJsonFileProvider(catalog), nil
}
