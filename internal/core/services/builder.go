package services

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gallery-service/internal/core/domain"
)

const socialCardURLFormat = "https://opengraph.githubassets.com/1/%s/%s"

// RepoCoordinates splits a git URL on "/" and returns the owner (second to
// last segment) and the repository name (last segment without its trailing
// extension). Malformed URLs are not rejected; the parts just come out empty
// or odd.
func RepoCoordinates(gitURL string) (owner, name string) {
	segments := strings.Split(gitURL, "/")
	last := segments[len(segments)-1]
	name = strings.TrimSuffix(last, path.Ext(last))
	if len(segments) > 1 {
		owner = segments[len(segments)-2]
	}
	return owner, name
}

// SocialCardURL returns the generated preview image for a hosted repository.
func SocialCardURL(owner, name string) string {
	return fmt.Sprintf(socialCardURLFormat, owner, name)
}

// BuildExhibit derives an exhibit from its source. An explicitly configured
// icon is kept as is, including the empty string; only a nil icon gets the
// social card URL. The returned exhibit is not cloned.
func BuildExhibit(src domain.ExhibitSource, id int, basePath string) domain.Exhibit {
	owner, name := RepoCoordinates(src.Git)

	var icon string
	if src.Icon != nil {
		icon = *src.Icon
	} else {
		icon = SocialCardURL(owner, name)
	}

	return domain.Exhibit{
		ID:        id,
		Source:    src,
		Icon:      &icon,
		LocalPath: filepath.Join(basePath, name),
	}
}

// BuildExhibits builds a batch; ids are positions in srcs. Local paths are
// unique within the batch: the first exhibit with a given repository name
// keeps basePath/<name>, later ones move to basePath/<owner>-<name>, and to
// basePath/<owner>-<name>-<id> if that is taken too.
func BuildExhibits(srcs []domain.ExhibitSource, basePath string) []domain.Exhibit {
	exhibits := make([]domain.Exhibit, 0, len(srcs))
	taken := make(map[string]bool, len(srcs))
	for i, src := range srcs {
		e := BuildExhibit(src, i, basePath)
		if taken[e.LocalPath] {
			e.LocalPath = uniqueLocalPath(src, i, basePath, taken)
		}
		taken[e.LocalPath] = true
		exhibits = append(exhibits, e)
	}
	return exhibits
}

func uniqueLocalPath(src domain.ExhibitSource, id int, basePath string, taken map[string]bool) string {
	owner, name := RepoCoordinates(src.Git)
	dir := name
	if owner != "" {
		dir = owner + "-" + name
		if p := filepath.Join(basePath, dir); !taken[p] {
			return p
		}
	}
	return filepath.Join(basePath, fmt.Sprintf("%s-%d", dir, id))
}
