package homepage

import (
	"fmt"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// BookmarkMapper converts Homepage bookmark config to shortcut drafts
type BookmarkMapper struct{}

// NewBookmarkMapper creates a new bookmark mapper
func NewBookmarkMapper() *BookmarkMapper {
	return &BookmarkMapper{}
}

// MapBookmarks converts BookmarksConfig to drafts. The bookmark key is used
// as the name; abbr is only a fallback when the key is blank.
func (m *BookmarkMapper) MapBookmarks(config BookmarksConfig) ([]domain.Draft, error) {
	drafts := make([]domain.Draft, 0)

	for _, category := range config {
		for _, categoryName := range sortedKeys(category) {
			for _, bookmarkMap := range category[categoryName] {
				for _, bookmarkName := range sortedKeys(bookmarkMap) {
					entryList := bookmarkMap[bookmarkName]
					// Each bookmark has a list with a single entry
					if len(entryList) == 0 {
						continue
					}
					entry := entryList[0]

					if !validate.IsHTTPURL(entry.Href) {
						continue
					}

					name := bookmarkName
					if name == "" {
						name = entry.Abbr
					}
					drafts = append(drafts, newDraft(name, entry.Href, len(drafts)))
				}
			}
		}
	}

	if len(drafts) == 0 {
		return nil, fmt.Errorf("no valid bookmarks found in config")
	}

	return drafts, nil
}
