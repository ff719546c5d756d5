package homepage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// Mapper converts Homepage services to shortcut drafts
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapServices converts ServicesConfig into drafts, one per service with an
// http(s) href, in file order. Colors cycle through the presets.
func (m *Mapper) MapServices(config ServicesConfig) ([]domain.Draft, error) {
	var drafts []domain.Draft

	for _, groupMap := range config {
		for _, groupName := range sortedKeys(groupMap) {
			for _, serviceMap := range groupMap[groupName] {
				for _, serviceName := range sortedKeys(serviceMap) {
					props := serviceMap[serviceName]
					if !validate.IsHTTPURL(props.Href) {
						continue
					}
					drafts = append(drafts, newDraft(serviceName, props.Href, len(drafts)))
				}
			}
		}
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("no valid services found in homepage config")
	}

	return drafts, nil
}

func newDraft(name, href string, n int) domain.Draft {
	return domain.Draft{
		URL:         href,
		Name:        strings.TrimSpace(name),
		Color:       validate.Presets[n%len(validate.Presets)],
		DisplayMode: string(domain.DisplayAuto),
	}
}

// Homepage groups are single-key maps in practice; sorting keeps output
// stable when they are not.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
